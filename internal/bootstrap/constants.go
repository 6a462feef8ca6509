package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgStartingHackArena   = "Starting HackArena"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageReady     = "Storage backend ready"
	LogMsgMigrationsDone   = "Database migrations applied"
	LogMsgCatalogSeeded    = "Starter catalog seeded"
	ErrMsgFailedOpenPool   = "failed to open database pool"
	ErrMsgFailedMigrate    = "failed to apply migrations"
	ErrMsgFailedLoadSeed   = "failed to load starter catalog"
	ErrMsgFailedApplySeed  = "failed to seed starter catalog"
	ErrMsgUnknownBackend   = "unknown storage backend"
	ErrMsgFailedSeedRNG    = "failed to seed hack sampler"
	LogMsgHackSamplerReady = "Hack sampler seeded"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgQuestHandlerRegistered     = "Quest progress handler registered"
	LogMsgDiscordRelayRegistered     = "Discord feed relay registered"
	LogMsgDiscordRelayDisabled       = "Discord feed relay disabled"
	ErrMsgFailedCreateDiscordRelay   = "failed to create discord relay"
)

// =============================================================================
// Runtime
// =============================================================================

const (
	LogMsgTelemetryFailed     = "Tracing disabled, exporter setup failed"
	LogMsgStaminaRegenStarted = "Stamina regeneration scheduled"
	LogMsgServerFailed        = "Server failed"
	LogMsgSignalReceived      = "Shutdown signal received"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownWorkers        = "Stopping background workers..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgTelemetryShutdownFailed    = "Tracer provider shutdown failed"
)
