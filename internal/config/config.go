package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string
	CatalogURL        string // catalog service base, no trailing slash
	MediaURL          string // media service base, no trailing slash
	RevalidateSeconds int    // bounded-staleness window for upstream responses
	UpstreamTimeoutMS int
	LogFile           string
	// devservices only
	DBDSN    string
	MediaDir string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("CATALOG_URL", "http://localhost:8001")
	v.SetDefault("MEDIA_URL", "http://localhost:8003")
	v.SetDefault("REVALIDATE_SECONDS", 30)
	v.SetDefault("UPSTREAM_TIMEOUT_MS", 5000)
	v.SetDefault("LOG_FILE", "./emeraldshop.log")
	v.SetDefault("DB_DSN", "devservices.db")
	v.SetDefault("MEDIA_DIR", "./web/media")

	cfg := Config{
		Port:              v.GetString("PORT"),
		CatalogURL:        strings.TrimRight(v.GetString("CATALOG_URL"), "/"),
		MediaURL:          strings.TrimRight(v.GetString("MEDIA_URL"), "/"),
		RevalidateSeconds: v.GetInt("REVALIDATE_SECONDS"),
		UpstreamTimeoutMS: v.GetInt("UPSTREAM_TIMEOUT_MS"),
		LogFile:           v.GetString("LOG_FILE"),
		DBDSN:             v.GetString("DB_DSN"),
		MediaDir:          v.GetString("MEDIA_DIR"),
	}
	if cfg.RevalidateSeconds < 1 {
		cfg.RevalidateSeconds = 30
	}
	log.Printf("[config] PORT=%s CATALOG_URL=%s MEDIA_URL=%s REVALIDATE_SECONDS=%d LOG_FILE=%s",
		cfg.Port, cfg.CatalogURL, cfg.MediaURL, cfg.RevalidateSeconds, cfg.LogFile)
	return cfg
}
