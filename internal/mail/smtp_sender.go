// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	gomail "github.com/wneessen/go-mail"
)

var (
	ErrInvalidAddress = errors.New("invalid email address")
	ErrSMTPDelivery   = errors.New("smtp delivery failed")
)

// SMTPSender sends messages through the configured SMTP server. A new
// connection is dialed for every message.
type SMTPSender struct {
	cfg    config.Mail
	logger *logger.Logger
}

func NewSMTPSender(cfg config.Mail, log *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: log}
}

// Send builds a multipart message with a text body and an HTML alternative
// and delivers it. ctx bounds the whole SMTP conversation.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: client init: %w", ErrSMTPDelivery, err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Err(err).Str("host", s.cfg.Host).Int("port", s.cfg.Port).Str("to", msg.To).Msg("smtp send failed")
		return fmt.Errorf("%w: %w", ErrSMTPDelivery, err)
	}

	s.logger.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")

	return nil
}

func (s *SMTPSender) buildMsg(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("%w: from %q: %w", ErrInvalidAddress, s.cfg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: to %q: %w", ErrInvalidAddress, msg.To, err)
	}
	m.Subject(msg.Subject)

	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}

func (s *SMTPSender) clientOptions() []gomail.Option {
	tlsPolicy := gomail.TLSOpportunistic
	if s.cfg.TLS {
		tlsPolicy = gomail.TLSMandatory
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	return opts
}
