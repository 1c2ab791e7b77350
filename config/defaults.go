package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultMountpoint matches the directory the filesystem has always been
// mounted on.
const DefaultMountpoint = "/var/u0"

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Mountpoint: DefaultMountpoint,
		AllowOther: false,
		Fuse: FuseConfig{
			Debug:        false,
			EntryTimeout: time.Second,
			AttrTimeout:  time.Second,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// setDefaults registers every key so environment overrides apply even
// without a config file.
func setDefaults(v *viper.Viper) {
	cfg := Default()

	v.SetDefault("mountpoint", cfg.Mountpoint)
	v.SetDefault("allow_other", cfg.AllowOther)
	v.SetDefault("fuse.debug", cfg.Fuse.Debug)
	v.SetDefault("fuse.entry_timeout", cfg.Fuse.EntryTimeout)
	v.SetDefault("fuse.attr_timeout", cfg.Fuse.AttrTimeout)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.json", cfg.Logging.JSON)
	v.SetDefault("logging.no_terminal", cfg.Logging.NoTerminal)
	v.SetDefault("metrics.listen", cfg.Metrics.Listen)
}
