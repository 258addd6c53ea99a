package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store backend identifiers.
const (
	BackendXLSX   = "xlsx"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Report ReportConfig
	Backup BackupConfig
	CORS   CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StoreConfig selects and configures the backing store for the ledger.
type StoreConfig struct {
	// Backend is either "xlsx" (legacy workbook) or "sqlite".
	Backend string
	// Path is the workbook path for the xlsx backend.
	Path string
	// DBPath is the database path for the sqlite backend.
	DBPath string
	// DefaultPartition backfills legacy rows without a partition column and
	// is always offered as the first available partition.
	DefaultPartition string
}

// ReportConfig parameterizes the report's closing block. The defaults match
// the historical printed reports so existing paperwork stays compatible.
type ReportConfig struct {
	City         string
	IssuerName   string
	ReceiverName string
}

// BackupConfig configures the optional scheduled snapshot of the store file.
// An empty Schedule disables it.
type BackupConfig struct {
	Schedule string
	Dir      string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Store: StoreConfig{
			Backend:          getEnv("STORE_BACKEND", BackendXLSX),
			Path:             getEnv("STORE_PATH", "./data/data_keuangan_final.xlsx"),
			DBPath:           getEnv("DB_PATH", "./data/ledger.db"),
			DefaultPartition: getEnv("DEFAULT_PARTITION", "Kas Utama"),
		},
		Report: ReportConfig{
			City:         getEnv("REPORT_CITY", "Jakarta"),
			IssuerName:   getEnv("REPORT_ISSUER", "Yaumil Mubarrok"),
			ReceiverName: getEnv("REPORT_RECEIVER", "Ustadzah Sofwatunnufus, S.E"),
		},
		Backup: BackupConfig{
			Schedule: getEnv("BACKUP_SCHEDULE", ""),
			Dir:      getEnv("BACKUP_DIR", "./data/backup"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.Store.Backend != BackendXLSX && config.Store.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", config.Store.Backend)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
