package main

import (
	"log"
	"os"
	"strings"

	"helpdesk/config"
	"helpdesk/db"
	"helpdesk/router"
	"helpdesk/tools"
	"helpdesk/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG_PATH   (caminho do JSON de configuração; default config.json)
// - AUTOMIGRATE   (1 para rodar automigrate no boot, útil em dev)
// - JWT_SECRET    (sobrescreve security.jwt_secret do arquivo)
//
// O resto (porta, banco, SMTP, CORS, notifier) vem do arquivo de configuração.
//
// =====================

func main() {
	_ = godotenv.Load()

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))
	db.SetConfigurations(cfg)

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer database.Close()

	mailer := tools.NewSMTPMailer(cfg)
	workers.StartNotificationProcessor(database, mailer, workers.OptionsFromConfig(cfg))

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Helpdesk listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
