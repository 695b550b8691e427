package config

import "os"

// Config holds process-wide configuration for the nlbn CLI: default
// conversion options plus the ambient service settings (error reporting,
// metrics, history store).
type Config struct {
	Environment string

	// Default conversion options, overridable per invocation.
	OutputDir        string
	ConvertSymbol    bool
	ConvertFootprint bool
	Convert3D        bool
	KicadV5          bool
	ProjectRelative  bool
	Overwrite        bool
	TargetKicad      bool
	TargetAltium     bool

	// Batch
	BatchConcurrency int

	// Observability
	SentryDSN         string
	MetricsNamespace  string // empty disables the CloudWatch publisher
	MetricsRegion     string
	HistoryDatabaseURL string // empty disables the GORM history store
}

// Load reads configuration from the environment, applying the same
// defaults the original desktop application shipped with.
func Load() *Config {
	return &Config{
		Environment:        getEnv("NLBN_ENVIRONMENT", "development"),
		OutputDir:          getEnv("NLBN_OUTPUT_DIR", "./output"),
		ConvertSymbol:      getEnvBool("NLBN_CONVERT_SYMBOL", true),
		ConvertFootprint:   getEnvBool("NLBN_CONVERT_FOOTPRINT", true),
		Convert3D:          getEnvBool("NLBN_CONVERT_3D", true),
		KicadV5:            getEnvBool("NLBN_KICAD_V5", false),
		ProjectRelative:    getEnvBool("NLBN_PROJECT_RELATIVE", false),
		Overwrite:          getEnvBool("NLBN_OVERWRITE", false),
		TargetKicad:        getEnvBool("NLBN_TARGET_KICAD", true),
		TargetAltium:       getEnvBool("NLBN_TARGET_ALTIUM", false),
		BatchConcurrency:   getEnvInt("NLBN_BATCH_CONCURRENCY", 4),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		MetricsNamespace:   getEnv("NLBN_METRICS_NAMESPACE", ""),
		MetricsRegion:      getEnv("NLBN_METRICS_REGION", "us-east-1"),
		HistoryDatabaseURL: getEnv("NLBN_HISTORY_DATABASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	switch value {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return defaultValue
		}
		n = n*10 + int(r-'0')
	}
	return n
}
