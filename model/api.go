package model

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Capability string

const (
	CapabilityManageEvents        Capability = "canManageEvents"
	CapabilityManageRegistrations Capability = "canManageRegistrations"
	CapabilityManageBans          Capability = "canManageBans"
	CapabilityManageTeam          Capability = "canManageTeam"
)

// Principal is the caller of an admin operation as resolved by the gateway.
type Principal struct {
	UserID       string
	TenantID     string
	Capabilities map[Capability]bool
}

func (p Principal) Can(c Capability) bool {
	return p.Capabilities[c]
}
