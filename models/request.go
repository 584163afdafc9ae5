package models

import (
	"helpdesk/tools"
	"time"
)

/************************************************
/**** MARK: REQUEST STATUS ****/
/************************************************/
const REQUEST_STATUS_ACTIVE = "Active"
const REQUEST_STATUS_RESOLVED = "Resolved"

// Request representa uma solicitação de suporte enviada pelo formulário público.
// Nasce sempre como "Active" e só muda via o endpoint autenticado de update.
type Request struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"not null;index" json:"email" form:"email"`
	Status    string     `gorm:"not null;default:'Active';index" json:"status"`
	Message   string     `gorm:"type:text;not null" json:"message" form:"message"`
	Comment   *string    `gorm:"type:text" json:"comment"`
	CreatedAt *time.Time `gorm:"index" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func IsRequestStatusValid(status string) bool {
	return status == REQUEST_STATUS_ACTIVE || status == REQUEST_STATUS_RESOLVED
}

// ValidateNew valida os campos de criação. Retorna um mapa campo -> mensagem
// (vazio quando tudo ok), um por campo violado.
func (r Request) ValidateNew() map[string]string {
	errs := map[string]string{}
	if r.Name == "" {
		errs["name"] = "name é obrigatório"
	} else if len(r.Name) > 255 {
		errs["name"] = "name deve ter no máximo 255 caracteres"
	}
	if r.Email == "" {
		errs["email"] = "email é obrigatório"
	} else if len(r.Email) > 255 {
		errs["email"] = "email deve ter no máximo 255 caracteres"
	} else if !tools.ValidateEmail(r.Email) {
		errs["email"] = "email inválido"
	}
	if r.Message == "" {
		errs["message"] = "message é obrigatório"
	}
	return errs
}
