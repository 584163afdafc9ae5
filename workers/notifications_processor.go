package workers

import (
	"log"
	"time"

	"helpdesk/config"
	"helpdesk/models"
	"helpdesk/tools"

	"github.com/jinzhu/gorm"
)

// Options controla o loop de entrega: intervalo do poll, número máximo de
// tentativas e backoff linear entre elas.
type Options struct {
	PollInterval time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
}

func OptionsFromConfig(cfg config.Configuration) Options {
	return Options{
		PollInterval: time.Duration(cfg.Notifier.PollIntervalSeconds) * time.Second,
		MaxAttempts:  cfg.Notifier.MaxAttempts,
		RetryBackoff: time.Duration(cfg.Notifier.RetryBackoffSeconds) * time.Second,
	}
}

// StartNotificationProcessor starts a loop that delivers pending notifications
// whose ScheduledAt <= now.
func StartNotificationProcessor(db *gorm.DB, mailer tools.Mailer, opts Options) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}

	go func() {
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()

		for range ticker.C {
			processDueNotifications(db, mailer, opts)
		}
	}()
}

func processDueNotifications(db *gorm.DB, mailer tools.Mailer, opts Options) {
	now := time.Now()

	var items []models.Notification
	if err := db.
		Where("status = ?", models.NOTIFICATION_STATUS_PENDING).
		Where("scheduled_at IS NOT NULL AND scheduled_at <= ?", now).
		Order("scheduled_at asc, id asc").
		Limit(50).
		Find(&items).Error; err != nil {
		log.Printf("notifications worker: query error: %v", err)
		return
	}

	for _, n := range items {
		// lock otimista: só entrega se conseguir mudar status
		res := db.Model(&models.Notification{}).
			Where("id = ? AND status = ?", n.ID, models.NOTIFICATION_STATUS_PENDING).
			Update("status", models.NOTIFICATION_STATUS_SENDING)
		if res.Error != nil || res.RowsAffected == 0 {
			continue
		}

		go handleNotification(db, mailer, opts, n.ID)
	}
}

func handleNotification(db *gorm.DB, mailer tools.Mailer, opts Options, notificationID int64) {
	var n models.Notification
	if err := db.First(&n, notificationID).Error; err != nil {
		return
	}
	if n.Status != models.NOTIFICATION_STATUS_SENDING {
		return
	}

	subject, body, err := RenderNotification(n)
	if err != nil {
		// erro de template não é recuperável com retry
		log.Printf("notifications worker: render error (id=%d): %v", n.ID, err)
		_ = db.Model(&models.Notification{}).Where("id = ?", n.ID).Updates(map[string]any{
			"status":     models.NOTIFICATION_STATUS_FAILED,
			"last_error": err.Error(),
		}).Error
		return
	}

	attempts := n.Attempts + 1

	if err := mailer.Send(n.Recipient, subject, body); err != nil {
		log.Printf("notifications worker: send error (id=%d attempt=%d): %v", n.ID, attempts, err)

		if attempts >= opts.MaxAttempts {
			_ = db.Model(&models.Notification{}).Where("id = ?", n.ID).Updates(map[string]any{
				"status":     models.NOTIFICATION_STATUS_FAILED,
				"attempts":   attempts,
				"last_error": err.Error(),
			}).Error
			return
		}

		next := time.Now().Add(opts.RetryBackoff * time.Duration(attempts))
		_ = db.Model(&models.Notification{}).Where("id = ?", n.ID).Updates(map[string]any{
			"status":       models.NOTIFICATION_STATUS_PENDING,
			"attempts":     attempts,
			"last_error":   err.Error(),
			"scheduled_at": &next,
		}).Error
		return
	}

	t := time.Now()
	_ = db.Model(&models.Notification{}).Where("id = ?", n.ID).Updates(map[string]any{
		"status":     models.NOTIFICATION_STATUS_SENT,
		"attempts":   attempts,
		"last_error": "",
		"sent_at":    &t,
	}).Error
}
