package worker

// Log messages for the worker pool and jobs
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgResetCheckFired   = "Daily reset executed"
	LogMsgResetCheckSkipped = "Daily reset not due"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
