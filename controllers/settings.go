package controllers

import (
	"os"

	"helpdesk/config"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func getJWTSecret() string {
	if secret := getenv("JWT_SECRET", ""); secret != "" {
		return secret
	}
	if conf.Security.JwtSecret != "" {
		return conf.Security.JwtSecret
	}
	return "CHANGE_ME"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
