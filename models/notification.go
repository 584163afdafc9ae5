package models

import "time"

/************************************************
/**** MARK: NOTIFICATION KIND ****/
/************************************************/
const NOTIFICATION_KIND_CREATED = "created"
const NOTIFICATION_KIND_ANSWERED = "answered"

/************************************************
/**** MARK: NOTIFICATION STATUS ****/
/************************************************/
const NOTIFICATION_STATUS_PENDING = "pending"
const NOTIFICATION_STATUS_SENDING = "sending"
const NOTIFICATION_STATUS_SENT = "sent"
const NOTIFICATION_STATUS_FAILED = "failed"

// Notification é a linha de outbox de um e-mail a ser enviado.
// O controller grava a linha na mesma operação que muda o Request;
// o worker pega as pendentes e tenta entregar (com retry e backoff).
type Notification struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	RequestID   int64      `gorm:"not null;index" json:"request_id"`
	Kind        string     `gorm:"not null" json:"kind"` // created | answered
	Recipient   string     `gorm:"not null" json:"recipient"`
	Name        string     `gorm:"not null" json:"name"`
	Payload     string     `gorm:"type:text" json:"payload"` // message (created) ou comment (answered)
	Status      string     `gorm:"not null;default:'pending';index" json:"status"`
	Attempts    int        `gorm:"not null;default:0" json:"attempts"`
	LastError   string     `gorm:"type:text" json:"last_error"`
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at"`
	SentAt      *time.Time `json:"sent_at"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewRequestNotification monta a notificação de um Request.
// kind "created" usa a message; "answered" usa o comment mais recente.
func NewRequestNotification(req Request, kind string) Notification {
	payload := req.Message
	if kind == NOTIFICATION_KIND_ANSWERED && req.Comment != nil {
		payload = *req.Comment
	}
	now := time.Now()
	return Notification{
		RequestID:   req.ID,
		Kind:        kind,
		Recipient:   req.Email,
		Name:        req.Name,
		Payload:     payload,
		Status:      NOTIFICATION_STATUS_PENDING,
		ScheduledAt: &now,
	}
}
