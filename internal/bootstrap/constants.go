package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// ServiceName is the service identity stamped on every log line
const ServiceName = "striderush"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingStrideRush  = "Starting StrideRush"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Config load and sync messages
const (
	LogMsgSyncingStoreItems        = "Syncing store items from JSON config..."
	LogMsgSyncingCosmeticTemplates = "Syncing cosmetic templates from JSON config..."
	LogMsgStoreItemsSynced         = "Store items synced successfully"
	LogMsgCosmeticTemplatesSynced  = "Cosmetic templates synced successfully"

	ErrMsgFailedLoadTransportModes    = "failed to load transport mode config"
	ErrMsgFailedLoadRouletteWheel     = "failed to load roulette wheel config"
	ErrMsgFailedLoadAchievements      = "failed to load achievement config"
	ErrMsgFailedLoadStoreItems        = "failed to load store item config"
	ErrMsgFailedLoadCosmeticTemplates = "failed to load cosmetic template config"
	ErrMsgFailedSyncStoreItems        = "failed to sync store items to database"
	ErrMsgFailedSyncCosmeticTemplates = "failed to sync cosmetic templates to database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
