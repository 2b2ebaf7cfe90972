// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mail renders notification emails and hands them to an SMTP server.
//
// Every [models.EmailTemplate] has a plain-text and an HTML body under
// templates/. [NewSender] returns an [SMTPSender] when a mail host is
// configured and a [LogSender] otherwise, so local setups never need an SMTP
// server.
package mail
