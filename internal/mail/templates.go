// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/MKhiriev/go-courses-api/models"
)

//go:embed templates/*.txt templates/*.html
var templateFS embed.FS

// ErrUnknownTemplate is returned when an email names a template that has no
// subject or body.
var ErrUnknownTemplate = errors.New("unknown email template")

var subjects = map[models.EmailTemplate]string{
	models.EmailPasswordReset:      "Reset your password",
	models.EmailAccountProvisioned: "Your account is ready",
	models.EmailRecoveryApproved:   "Your access has been restored",
	models.EmailRecoveryRejected:   "Your recovery request was rejected",
}

// Message is a rendered email ready to be sent.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Templates renders [models.Email] values into messages.
type Templates struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplates parses the embedded templates.
func NewTemplates() (*Templates, error) {
	text, err := texttemplate.New("text").Option("missingkey=zero").ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parsing text templates: %w", err)
	}

	html, err := htmltemplate.New("html").Option("missingkey=zero").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing html templates: %w", err)
	}

	return &Templates{text: text, html: html}, nil
}

// Render produces the subject and both bodies of email.
func (t *Templates) Render(email models.Email) (Message, error) {
	subject, ok := subjects[email.Template]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, email.Template)
	}

	name := string(email.Template)

	var text bytes.Buffer
	if err := t.text.ExecuteTemplate(&text, name+".txt", email.Data); err != nil {
		return Message{}, fmt.Errorf("rendering %s text body: %w", name, err)
	}

	var html bytes.Buffer
	if err := t.html.ExecuteTemplate(&html, name+".html", email.Data); err != nil {
		return Message{}, fmt.Errorf("rendering %s html body: %w", name, err)
	}

	return Message{
		To:      email.To,
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
