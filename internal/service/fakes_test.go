// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
)

// memoryStore is a stateful in-memory implementation of the store
// interfaces used by scenario tests. It mirrors the transactional
// semantics of the PostgreSQL repositories under a single mutex.
type memoryStore struct {
	mu sync.Mutex

	seq      int
	now      time.Time
	users    map[string]models.User
	hashes   map[string]*string
	requests map[string]models.RecoveryRequest
	products []models.Product

	revoked       map[string]bool
	revokedBefore map[string]time.Time
	resetTokens   map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		now:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users:         map[string]models.User{},
		hashes:        map[string]*string{},
		requests:      map[string]models.RecoveryRequest{},
		revoked:       map[string]bool{},
		revokedBefore: map[string]time.Time{},
		resetTokens:   map[string]string{},
	}
}

func (m *memoryStore) storages() *store.Storages {
	return &store.Storages{
		UserRepository:       m,
		CredentialRepository: m,
		RecoveryRepository:   m,
		ProductRepository:    m,
		SessionStore:         m,
		ResetTokenStore:      m,
	}
}

func (m *memoryStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memoryStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

// ── UserRepository ──

func (m *memoryStore) CreateUser(_ context.Context, user models.User, passwordHash *string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	user.ID = m.nextID("u")
	user.CreatedAt = m.tick()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	m.hashes[user.ID] = passwordHash

	return user, nil
}

func (m *memoryStore) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryStore) ListUsers(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0)
	for _, u := range m.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Banned != nil && u.IsBanned != *filter.Banned {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return users, nil
}

func (m *memoryStore) ApplyDeviceCheck(_ context.Context, userID string, decide store.DeviceDecider) (models.User, models.DeviceDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, models.DeviceDecision{}, store.ErrUserNotFound
	}

	decision := decide(user)
	switch decision.Action {
	case models.DeviceActionBind:
		device := decision.DeviceID
		user.DeviceID = &device
	case models.DeviceActionBan:
		reason := decision.BanReason
		user.IsBanned = true
		user.BanReason = &reason
	}
	m.users[userID] = user

	return user, decision, nil
}

func (m *memoryStore) SetBan(_ context.Context, userID, reason string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	user.IsBanned = true
	user.BanReason = &reason
	m.users[userID] = user

	return user, nil
}

func (m *memoryStore) ClearBan(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if !user.IsBanned {
		return models.User{}, store.ErrUserNotBanned
	}
	user.IsBanned = false
	user.BanReason = nil
	m.users[userID] = user

	return user, nil
}

// ── CredentialRepository ──

func (m *memoryStore) GetPasswordHash(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := m.hashes[userID]
	if hash == nil {
		return "", store.ErrCredentialNotSet
	}
	return *hash, nil
}

func (m *memoryStore) SetPasswordHash(_ context.Context, userID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	m.hashes[userID] = &passwordHash

	return nil
}

// ── RecoveryRepository ──

func (m *memoryStore) CreatePendingRequest(_ context.Context, request models.RecoveryRequest) (models.RecoveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[request.UserID]
	if !ok {
		return models.RecoveryRequest{}, store.ErrUserNotFound
	}
	if !user.IsBanned {
		return models.RecoveryRequest{}, store.ErrUserNotBanned
	}
	for _, r := range m.requests {
		if r.UserID == request.UserID && r.Status == models.RecoveryStatusPending {
			return models.RecoveryRequest{}, store.ErrPendingRecoveryRequestExists
		}
	}

	request.ID = m.nextID("r")
	request.Status = models.RecoveryStatusPending
	request.CreatedAt = m.tick()
	request.UpdatedAt = request.CreatedAt
	m.requests[request.ID] = request

	return request, nil
}

func (m *memoryStore) FindRequestByID(_ context.Context, requestID string) (models.RecoveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	request, ok := m.requests[requestID]
	if !ok {
		return models.RecoveryRequest{}, store.ErrRecoveryRequestNotFound
	}
	return request, nil
}

func (m *memoryStore) FindLatestRequest(_ context.Context, userID string) (models.RecoveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		latest models.RecoveryRequest
		found  bool
	)
	for _, r := range m.requests {
		if r.UserID == userID && (!found || r.CreatedAt.After(latest.CreatedAt)) {
			latest, found = r, true
		}
	}
	if !found {
		return models.RecoveryRequest{}, store.ErrRecoveryRequestNotFound
	}
	return latest, nil
}

func (m *memoryStore) ListRequests(_ context.Context, filter models.RecoveryFilter) ([]models.RecoveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	requests := make([]models.RecoveryRequest, 0)
	for _, r := range m.requests {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		summary := m.users[r.UserID].Summary()
		r.User = &summary
		requests = append(requests, r)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].CreatedAt.After(requests[j].CreatedAt) })

	return requests, nil
}

func (m *memoryStore) ResolveRequest(_ context.Context, decision models.RecoveryDecision) (models.RecoveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !decision.Status.IsTerminal() {
		return models.RecoveryRequest{}, store.ErrInvalidRecoveryStatus
	}

	request, ok := m.requests[decision.RequestID]
	if !ok {
		return models.RecoveryRequest{}, store.ErrRecoveryRequestNotFound
	}
	if request.Status != models.RecoveryStatusPending {
		return models.RecoveryRequest{}, store.ErrRecoveryRequestResolved
	}

	request.Status = decision.Status
	request.AdminNote = decision.AdminNote
	request.UpdatedAt = m.tick()
	m.requests[request.ID] = request

	user := m.users[request.UserID]
	if decision.Status == models.RecoveryStatusApproved {
		device := request.NewDeviceID
		user.DeviceID = &device
		user.IsBanned = false
		user.BanReason = nil
		m.users[user.ID] = user
	}
	summary := user.Summary()
	request.User = &summary

	return request, nil
}

// ── ProductRepository ──

func (m *memoryStore) ListProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for _, p := range m.products {
		if filter.Category == "" || p.Category == filter.Category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *memoryStore) FindProductByID(_ context.Context, productID int64) (models.Product, error) {
	for _, p := range m.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return models.Product{}, store.ErrProductNotFound
}

// ── SessionStore ──

func (m *memoryStore) RevokeSession(_ context.Context, sessionID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl > 0 {
		m.revoked[sessionID] = true
	}
	return nil
}

func (m *memoryStore) IsSessionRevoked(_ context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.revoked[sessionID], nil
}

func (m *memoryStore) RevokeAllSessions(_ context.Context, userID string, at time.Time, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revokedBefore[userID] = at
	return nil
}

func (m *memoryStore) SessionsRevokedAt(_ context.Context, userID string) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.revokedBefore[userID], nil
}

// ── ResetTokenStore ──

func (m *memoryStore) SaveResetToken(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetTokens[tokenHash] = userID
	return nil
}

func (m *memoryStore) ConsumeResetToken(_ context.Context, tokenHash string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID, ok := m.resetTokens[tokenHash]
	if !ok {
		return "", store.ErrResetTokenNotFound
	}
	delete(m.resetTokens, tokenHash)

	return userID, nil
}

// recordingNotifier keeps every email it was asked to send.
type recordingNotifier struct {
	mu     sync.Mutex
	emails []models.Email
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, email models.Email) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.emails = append(n.emails, email)
	return nil
}

func (n *recordingNotifier) last() models.Email {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.emails) == 0 {
		return models.Email{}
	}
	return n.emails[len(n.emails)-1]
}
