package config

type Config struct {
	DB  DBConfig  `mapstructure:"database"`
	Log LogConfig `mapstructure:"log"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// LogConfig points the structured log at a file, stdout is owned by the
// interactive menus.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}
