package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration. Values come from the config
// file with INVENTORY_* environment overrides (dots become underscores,
// e.g. INVENTORY_MONGO_URI).
type Config struct {
	Addr      string
	Release   bool
	AdminPass string

	Mongo struct {
		URI      string
		Database string
	}

	Uploads struct {
		Dir      string
		MaxBytes int64
	}

	Templates struct {
		Dir   string
		Watch bool
	}

	PublicDir string

	Log LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Load reads the config file at path, or the default locations when path
// is empty. Missing file is fine when no explicit path was given; the
// defaults plus environment cover a local run.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("inventory")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
		var nf viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	cfg.Addr = v.GetString("addr")
	cfg.Release = v.GetBool("release")
	cfg.AdminPass = v.GetString("admin_pass")
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Uploads.Dir = v.GetString("uploads.dir")
	cfg.Uploads.MaxBytes = v.GetInt64("uploads.max_bytes")
	cfg.Templates.Dir = v.GetString("templates.dir")
	cfg.Templates.Watch = v.GetBool("templates.watch")
	cfg.PublicDir = v.GetString("public.dir")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.File = v.GetString("log.file")
	cfg.Log.MaxSize = v.GetInt("log.max_size")
	cfg.Log.MaxBackups = v.GetInt("log.max_backups")
	cfg.Log.MaxAge = v.GetInt("log.max_age")
	cfg.Log.Compress = v.GetBool("log.compress")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":3000")
	v.SetDefault("release", false)
	v.SetDefault("admin_pass", "secretadminpass")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "inventory_application")
	v.SetDefault("uploads.dir", "public/uploads")
	v.SetDefault("uploads.max_bytes", 5<<20)
	v.SetDefault("templates.dir", "web/templates")
	v.SetDefault("templates.watch", false)
	v.SetDefault("public.dir", "public")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.AdminPass == "" {
		return errors.New("admin_pass must not be empty")
	}
	if c.Mongo.URI == "" || c.Mongo.Database == "" {
		return errors.New("mongo.uri and mongo.database must be set")
	}
	return nil
}
