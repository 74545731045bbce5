package cmd

import "time"

// Config carries every externally supplied setting. StorageMode selects
// between the in-memory store ("memory") and Postgres ("postgres"); the
// Redis and Kafka settings are optional and fall back to in-process
// equivalents when empty.
type Config struct {
	HTTPPort                string
	StorageMode             string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	RedisAddr               string
	KafkaHost               string
	KafkaNotificationsTopic string
	LocationTTL             time.Duration
}
