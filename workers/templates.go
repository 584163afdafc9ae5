package workers

import (
	"fmt"
	"strings"
	"text/template"

	"helpdesk/models"
)

// Dois templates de e-mail: "created" consome {Name, Payload=message},
// "answered" consome {Name, Payload=comment}.

const createdSubject = "We received your request"
const answeredSubject = "Your request has been answered"

var createdTmpl = template.Must(template.New("request_created").Parse(
	`Hello {{.Name}},

We received your request:

{{.Payload}}

Our team will get back to you soon.
`))

var answeredTmpl = template.Must(template.New("request_answered").Parse(
	`Hello {{.Name}},

Your request has an answer:

{{.Payload}}
`))

// RenderNotification monta subject e corpo do e-mail a partir da linha de outbox.
func RenderNotification(n models.Notification) (string, string, error) {
	var tmpl *template.Template
	var subject string

	switch n.Kind {
	case models.NOTIFICATION_KIND_CREATED:
		tmpl, subject = createdTmpl, createdSubject
	case models.NOTIFICATION_KIND_ANSWERED:
		tmpl, subject = answeredTmpl, answeredSubject
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, n); err != nil {
		return "", "", err
	}
	return subject, b.String(), nil
}
