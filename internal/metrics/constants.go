package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Command metric names
const (
	MetricNameCommandsHandled = "discord_commands_handled_total"
	MetricNameCommandErrors   = "discord_command_errors_total"
)

// Record metric names
const (
	MetricNameRecordMutations = "record_mutations_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Command metric help text
const (
	HelpTextCommandsHandled = "Total number of slash commands handled"
	HelpTextCommandErrors   = "Total number of slash commands that ended in an error"
)

// Record metric help text
const (
	HelpTextRecordMutations = "Total number of record mutations by operation"
)

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelCommand   = "command"
	LabelOperation = "operation"
)

// Record mutation operations
const (
	OperationIncrement = "increment"
	OperationSet       = "set"
	OperationDelete    = "delete"
	OperationPlay      = "play"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
