package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

// Every key has a default so the program runs with an
// empty environment and no .env file.
type Config struct {
	Env    string `env:"ENV" env-default:"local"`
	SQLite SQLiteConfig
}

type SQLiteConfig struct {
	Path        string        `env:"SQLITE_PATH" env-default:"todo.db"`
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}
