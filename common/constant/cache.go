package constant

import "time"

const (
	RegistrationLock = "registration:lock:%s:%s"
	EventCountsKey   = "event:%s:counts"
)

const (
	RegistrationLockDefaultTTL = 30 * time.Second
	EventCountsDefaultTTL      = 5 * time.Second
)
