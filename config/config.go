package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	// Timezone de referência para os filtros por data (date_from/date_to).
	Timezone string `json:"timezone"`

	Cors struct {
		AllowedOrigin string `json:"allowed_origin"`
	} `json:"cors"`

	Security struct {
		JwtSecret string `json:"jwt_secret"`
	} `json:"security"`

	Mail struct {
		SmtpHost string `json:"smtp_host"`
		SmtpPort int    `json:"smtp_port"`
		SmtpUser string `json:"smtp_user"`
		SmtpPass string `json:"smtp_pass"`
		From     string `json:"from"`
	} `json:"mail"`

	Notifier struct {
		PollIntervalSeconds int `json:"poll_interval_seconds"`
		MaxAttempts         int `json:"max_attempts"`
		RetryBackoffSeconds int `json:"retry_backoff_seconds"`
	} `json:"notifier"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	return ApplyDefaults(c)
}

// ApplyDefaults preenche os zeros com valores sensatos (pra evitar nil/zero chato).
func ApplyDefaults(c Configuration) Configuration {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.Cors.AllowedOrigin == "" {
		c.Cors.AllowedOrigin = "*"
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Mail.SmtpHost == "" {
		c.Mail.SmtpHost = "localhost"
	}
	if c.Mail.SmtpPort <= 0 {
		c.Mail.SmtpPort = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = "no-reply@localhost"
	}
	if c.Notifier.PollIntervalSeconds <= 0 {
		c.Notifier.PollIntervalSeconds = 1
	}
	if c.Notifier.MaxAttempts <= 0 {
		c.Notifier.MaxAttempts = 3
	}
	if c.Notifier.RetryBackoffSeconds <= 0 {
		c.Notifier.RetryBackoffSeconds = 30
	}

	return c
}
