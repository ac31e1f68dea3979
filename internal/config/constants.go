package config

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvSampleName    = "SAMPLE_NAME"
	EnvReportOrder   = "REPORT_ORDER"
	EnvMetricsDump   = "METRICS_DUMP"
)

// Default values
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "stone-split"
	DefaultVersion     = "dev"
	DefaultSampleName  = "groceries"
	DefaultReportOrder = "address"
)

// Report orders
const (
	ReportOrderAddress = "address"
	ReportOrderInput   = "input"
)
