package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgPublishFailed         = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded        = "Successfully published event after retry"
	LogMsgRetryFailed           = "Retry failed"
	LogMsgDeadLetterOpenFailed  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter file"
	LogMsgDeadLetterWritten     = "Event written to dead letter queue"

	// LogMsgHandlerErrorFormat is the format for aggregated handler errors
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
