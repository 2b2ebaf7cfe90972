// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
)

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the SMTP sender when cfg names a host and the log sender
// otherwise.
func NewSender(cfg config.Mail, log *logger.Logger) Sender {
	if cfg.Host == "" {
		log.Warn().Msg("mail host is not configured, emails will only be logged")
		return NewLogSender(log)
	}

	return NewSMTPSender(cfg, log)
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{logger: log}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Text).
		Msg("email not sent, no mail host configured")

	return nil
}
