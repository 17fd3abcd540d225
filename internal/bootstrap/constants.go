package bootstrap

import "time"

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// DirPermission is the mode for directories created at startup
const DirPermission = 0o755

// Scheduler configuration
const (
	ResetCheckInterval = time.Minute
	PoolWorkers        = 2
	PoolQueueSize      = 16
)

// Log messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgStorageInitialized         = "Storage initialized"
	LogMsgContentLoaded              = "Quest content loaded"
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgServerForcedShutdown       = "Server forced shutdown"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgServerStopped              = "Server stopped"
)
