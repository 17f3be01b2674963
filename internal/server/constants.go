package server

// KeepaliveBody is returned from the root path. Hosting keepalive pings
// expect a 200 with a non-empty body.
const KeepaliveBody = "Bot is running!"

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Error messages
const (
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting       = "Server starting"
	LogMsgRequestStarted       = "Request started"
	LogMsgRequestCompleted     = "Request completed"
	LogMsgReadinessCheckFailed = "Readiness check failed"
)
