package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// BootstrapConfig controls the optional account seeding performed at
// startup. AccountsFile points at a plain text file of
// "username,password" lines; when empty, no seeding happens.
type BootstrapConfig struct {
	AccountsFile string `mapstructure:"accounts_file" validate:"omitempty,file"`
}
