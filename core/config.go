package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug            bool
	TestMode         bool
	Env              string // DEV (default), TEST, QA, PROD
	AppName          string
	SecretKey        []byte
	Build            string
	DefaultFromEmail mail.Address
	AdminEmail       string // author fallback for content created outside a session

	Server struct {
		Host            string
		Addr            string
		ShutdownTimeout time.Duration
	}

	Database struct {
		Engine  string // inmem | mongo
		URI     string
		Name    string
		Timeout time.Duration
	}

	Redis struct {
		Enabled bool
		Addr    string
	}

	JWT struct {
		ExpirationDelta        time.Duration
		RefreshExpirationDelta time.Duration
	}

	RateLimitPerMin int
	SendgridAPIKey  string
	RollbarToken    string
}

// NewConfig loads configuration from the environment with sane defaults.
// A config/.env.<env> file is loaded first when present.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "SHC Portal")
	conf.SetDefault("secretKey", "+2h@s3cr3t-k3y-chang3-m3-in-pr0d!")
	conf.SetDefault("build", "dev")
	conf.SetDefault("defaultFromEmail", "noreply@shc.com")
	conf.SetDefault("adminEmail", "admin@shc.com")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.addr", ":8000")
	conf.SetDefault("server.shutdownTimeout", 20*time.Second)
	conf.SetDefault("database.engine", "inmem")
	conf.SetDefault("database.uri", "mongodb://localhost:27017")
	conf.SetDefault("database.name", "shc")
	conf.SetDefault("database.timeout", 10*time.Second)
	conf.SetDefault("redis.enabled", false)
	conf.SetDefault("redis.addr", "localhost:6379")
	conf.SetDefault("jwt.expirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwt.refreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("rateLimitPerMin", 120)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		Env:              env,
		AppName:          conf.GetString("appName"),
		SecretKey:        []byte(conf.GetString("secretKey")),
		Build:            conf.GetString("build"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		AdminEmail:       conf.GetString("adminEmail"),
		RateLimitPerMin:  conf.GetInt("rateLimitPerMin"),
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
	}
	cfg.Server.Host = conf.GetString("server.host")
	cfg.Server.Addr = conf.GetString("server.addr")
	cfg.Server.ShutdownTimeout = conf.GetDuration("server.shutdownTimeout")
	cfg.Database.Engine = conf.GetString("database.engine")
	cfg.Database.URI = conf.GetString("database.uri")
	cfg.Database.Name = conf.GetString("database.name")
	cfg.Database.Timeout = conf.GetDuration("database.timeout")
	cfg.Redis.Enabled = conf.GetBool("redis.enabled")
	cfg.Redis.Addr = conf.GetString("redis.addr")
	cfg.JWT.ExpirationDelta = conf.GetDuration("jwt.expirationDelta")
	cfg.JWT.RefreshExpirationDelta = conf.GetDuration("jwt.refreshExpirationDelta")
	return cfg
}
