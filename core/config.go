package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		Server       ServerConfig
		Listing      ListingConfig
	}

	ServerConfig struct {
		Address                   string
		Host                      string
		DebugHost                 string
		DisableReqLogs            bool
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
		ShutdownTimeout           time.Duration
	}

	ListingConfig struct {
		PageSize int
	}
)

// NewConfig reads the configuration from the environment.
// `config/.env.<env>` is loaded first if it exists; ENV selects the environment (DEV by default).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Masomo")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("configDir", "config")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("listing.pageSize", 5)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(conf.GetString("configDir"), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:                   conf.GetString("server.address"),
			Host:                      conf.GetString("server.host"),
			DebugHost:                 conf.GetString("server.debugHost"),
			DisableReqLogs:            conf.GetBool("server.disableReqLogs"),
			JWTExpirationDelta:        conf.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("server.jwtRefreshExpirationDelta"),
			ShutdownTimeout:           conf.GetDuration("server.shutdownTimeout"),
		},
		Listing: ListingConfig{
			PageSize: conf.GetInt("listing.pageSize"),
		},
	}
}
