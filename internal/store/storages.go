// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	goredis "github.com/redis/go-redis/v9"
)

// Storages groups every repository and store used by the service layer
// together with the connections backing them.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
	RecoveryRepository   RecoveryRepository
	ProductRepository    ProductRepository
	SessionStore         SessionStore
	ResetTokenStore      ResetTokenStore

	db    *DB
	redis *goredis.Client
}

// NewStorages connects to PostgreSQL and Redis, applies migrations and
// builds all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	rdb, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, rdb, log), nil
}

func newStorages(db *DB, rdb *goredis.Client, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		UserRepository:       NewUserRepository(db, ids, log),
		CredentialRepository: NewCredentialRepository(db, log),
		RecoveryRepository:   NewRecoveryRepository(db, ids, log),
		ProductRepository:    NewProductRepository(db, log),
		SessionStore:         NewSessionStore(rdb),
		ResetTokenStore:      NewResetTokenStore(rdb),
		db:                   db,
		redis:                rdb,
	}
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}

	return errors.Join(errs...)
}
