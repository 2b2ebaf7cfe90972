// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/mail"
	"github.com/MKhiriev/go-courses-api/models"
)

var (
	ErrMailQueueFull         = errors.New("mail queue is full")
	ErrMailDispatcherStopped = errors.New("mail dispatcher is stopped")
)

// Renderer turns a queued email into a message.
type Renderer interface {
	Render(email models.Email) (mail.Message, error)
}

// MailDispatcher queues notification emails and delivers them from a fixed
// pool of goroutines. Notify never blocks the caller.
type MailDispatcher struct {
	queue       chan models.Email
	renderer    Renderer
	sender      mail.Sender
	workers     int
	sendTimeout time.Duration
	logger      *logger.Logger

	mu      sync.RWMutex
	stopped bool
}

func NewMailDispatcher(renderer Renderer, sender mail.Sender, cfg config.Workers, logger *logger.Logger) *MailDispatcher {
	queueSize := max(cfg.MailQueueSize, 1)
	workers := max(cfg.MailWorkers, 1)

	return &MailDispatcher{
		queue:       make(chan models.Email, queueSize),
		renderer:    renderer,
		sender:      sender,
		workers:     workers,
		sendTimeout: cfg.MailSendTimeout,
		logger:      logger,
	}
}

// Notify enqueues email. It fails with [ErrMailQueueFull] when the queue has
// no room and with [ErrMailDispatcherStopped] after Run has returned.
func (d *MailDispatcher) Notify(ctx context.Context, email models.Email) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrMailDispatcherStopped
	}

	select {
	case d.queue <- email:
		return nil
	default:
		logger.FromContext(ctx).Warn().Str("template", string(email.Template)).Msg("mail queue is full, email dropped")
		return ErrMailQueueFull
	}
}

// Run delivers queued emails until ctx is cancelled. Emails still queued at
// that point are delivered before Run returns.
func (d *MailDispatcher) Run(ctx context.Context) {
	d.logger.Info().Int("workers", d.workers).Int("queue_size", cap(d.queue)).Msg("mail dispatcher started")

	var wg sync.WaitGroup
	for range d.workers {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case email := <-d.queue:
					d.deliver(ctx, email)
				}
			}
		})
	}
	wg.Wait()

	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	drained := 0
	for {
		select {
		case email := <-d.queue:
			d.deliver(ctx, email)
			drained++
		default:
			d.logger.Info().Int("drained", drained).Msg("mail dispatcher stopped")
			return
		}
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, email models.Email) {
	log := d.logger.With().Str("template", string(email.Template)).Str("to", email.To).Logger()

	msg, err := d.renderer.Render(email)
	if err != nil {
		log.Err(err).Msg("rendering email failed")
		return
	}

	// delivery of an accepted email outlives the shutdown signal
	sendCtx := context.WithoutCancel(ctx)
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(sendCtx, d.sendTimeout)
		defer cancel()
	}

	if err = d.sender.Send(sendCtx, msg); err != nil {
		log.Err(err).Msg("sending email failed")
		return
	}

	log.Debug().Msg("email delivered")
}
