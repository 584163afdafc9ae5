package controllers

import (
	"log"
	"net/http"
	"time"

	dbpkg "helpdesk/db"
	"helpdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// CreateRequestPayload carrega só os campos que o cliente pode definir.
// status/comment enviados no body são ignorados de propósito.
type CreateRequestPayload struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

type UpdateRequestPayload struct {
	Status  string `json:"status" form:"status"`
	Comment string `json:"comment" form:"comment"`
}

// POST /api/requests (public)
func CreateRequest(c *gin.Context) {
	var payload CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	item := models.Request{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
		Status:  models.REQUEST_STATUS_ACTIVE,
	}

	if errs := item.ValidateNew(); len(errs) > 0 {
		RespondValidationError(c, errs)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	enqueueNotification(db, item, models.NOTIFICATION_KIND_CREATED)

	RespondCreated(c, item)
}

// GET /api/requests (auth)
// Filtros: status (igualdade exata), date_from + date_to (só valem juntos,
// datas YYYY-MM-DD no timezone de referência, intervalo inclusivo).
func GetRequests(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Model(&models.Request{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	if dateFrom != "" && dateTo != "" {
		loc := referenceLocation()
		from, err := time.ParseInLocation("2006-01-02", dateFrom, loc)
		if err != nil {
			RespondError(c, "date_from inválido (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		to, err := time.ParseInLocation("2006-01-02", dateTo, loc)
		if err != nil {
			RespondError(c, "date_to inválido (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		// inclusivo: 00:00:00 do date_from até 23:59:59 do date_to
		endOfDay := to.Add(24*time.Hour - time.Second)
		query = query.Where("created_at BETWEEN ? AND ?", from, endOfDay)
	}

	items := []models.Request{}
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, items)
}

// PUT /api/requests/:id (auth)
func UpdateRequest(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var payload UpdateRequestPayload
	if err := c.Bind(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	errs := map[string]string{}
	if payload.Status == "" {
		errs["status"] = "status é obrigatório"
	} else if !models.IsRequestStatusValid(payload.Status) {
		errs["status"] = "status deve ser Active ou Resolved"
	}
	if payload.Comment == "" {
		errs["comment"] = "comment é obrigatório"
	}
	if len(errs) > 0 {
		RespondValidationError(c, errs)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.Request
	if err := db.First(&item, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			RespondError(c, "request não encontrado", http.StatusNotFound)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	item.Status = payload.Status
	item.Comment = &payload.Comment

	// Persiste antes de enfileirar: falha no e-mail nunca desfaz o update,
	// e falha no update nunca dispara e-mail.
	if err := db.Save(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	enqueueNotification(db, item, models.NOTIFICATION_KIND_ANSWERED)

	RespondSuccess(c, item)
}

// enqueueNotification grava a linha de outbox. Fire-and-forget: erro aqui é
// logado e não derruba a resposta da API.
func enqueueNotification(db *gorm.DB, req models.Request, kind string) {
	n := models.NewRequestNotification(req, kind)
	if err := db.Create(&n).Error; err != nil {
		log.Printf("notifications: enqueue %s for request %d failed: %v", kind, req.ID, err)
	}
}

func referenceLocation() *time.Location {
	tz := conf.Timezone
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: timezone %q inválido, usando UTC", tz)
		return time.UTC
	}
	return loc
}
