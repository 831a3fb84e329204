package store

import "time"

// Config configures the store
type Config struct {
	// AppName is reported to Postgres as application_name
	AppName string

	PG PGConfig
}

// PGConfig configures the platform database connection
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	// LogSQL logs every statement at debug; slow ones are always logged
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the startup ping attempts, 0 means 20
	ConnectRetries int
	// PingTimeout bounds one ping, 0 means 3s
	PingTimeout time.Duration
}
