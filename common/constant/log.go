package constant

const (
	LogFieldErr      = "err"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldTraceId  = "trace_id"
	LogFieldTenantId = "tenant_id"
	LogFieldEventId  = "event_id"
)
