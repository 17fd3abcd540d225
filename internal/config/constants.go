package config

// Default configuration values
const (
	DefaultPort        = "8420"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "lifequest"
	DefaultVersion     = "dev"
	DefaultDataDir     = "data"
	DefaultContentDir  = "configs"
)

// File and directory names under DataDir
const (
	DBFileName         = "lifequest.db"
	SnapshotDirName    = "snapshots"
	DeadLetterFileName = "events.deadletter.jsonl"
)

// Content file names under ContentDir
const (
	DailyQuestsFileName = "daily_quests.json"
	MainQuestsFileName  = "main_quests.json"
)
