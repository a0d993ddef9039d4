package config

import (
	"encoding/json"
	"os"
)

// DBConfig holds the database connection parameters.
type DBConfig struct {
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
	TimeZone string `json:"timezone"`
}

// LoggerConfig holds the logging configuration.
type LoggerConfig struct {
	Level      string `json:"level"`  // e.g., "debug", "info", "warn", "error"
	Format     string `json:"format"` // "text" or "json"
	FilePath   string `json:"file_path"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
	Compress   bool   `json:"compress"`
}

// PolicyConfig holds the statechain entity's published operating parameters.
// Fee proportions are in basis points; the deposit fee may be negative when
// deposits are subsidized.
type PolicyConfig struct {
	Network       string `json:"network"` // "mainnet", "testnet" or "regtest"
	Address       string `json:"address"` // fee payment address
	Deposit       int64  `json:"deposit"`
	Withdraw      uint64 `json:"withdraw"`
	Interval      uint32 `json:"interval"` // locktime decrement interval in blocks
	InitLock      uint32 `json:"initlock"` // initial backup locktime
	WalletVersion string `json:"wallet_version"`
	WalletMessage string `json:"wallet_message"`
}

// DepositConfig holds boundary policy knobs for deposit initiation.
// Rate limiting is disabled when RateLimit <= 0.
type DepositConfig struct {
	StrictProofKeys bool    `json:"strict_proof_keys"`
	RateLimit       float64 `json:"rate_limit"` // requests per second per client IP
	RateBurst       int     `json:"rate_burst"`
}

// Config holds the application's configuration values.
type Config struct {
	ServerPort string        `json:"server_port"`
	Database   DBConfig      `json:"database"`
	Logger     LoggerConfig  `json:"logger"`
	Policy     PolicyConfig  `json:"policy"`
	Deposit    DepositConfig `json:"deposit"`
}

// LoadConfig reads the configuration from a file and returns a Config struct.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	config := &Config{}
	err = decoder.Decode(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
