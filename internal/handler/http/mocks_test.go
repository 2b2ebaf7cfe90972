// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// Function-field service doubles. A nil field panics when called, so a test
// fails loudly on an unexpected service call.

type authServiceMock struct {
	signupFn         func(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	forgotPasswordFn func(ctx context.Context, request models.ForgotPasswordRequest) error
	resetPasswordFn  func(ctx context.Context, request models.ResetPasswordRequest) error
	meFn             func(ctx context.Context, identity models.Identity) (models.User, error)
	logoutFn         func(ctx context.Context, identity models.Identity) error
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *authServiceMock) Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error) {
	return m.signupFn(ctx, request)
}

func (m *authServiceMock) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *authServiceMock) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error {
	return m.forgotPasswordFn(ctx, request)
}

func (m *authServiceMock) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	return m.resetPasswordFn(ctx, request)
}

func (m *authServiceMock) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	return m.meFn(ctx, identity)
}

func (m *authServiceMock) Logout(ctx context.Context, identity models.Identity) error {
	return m.logoutFn(ctx, identity)
}

func (m *authServiceMock) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type recoveryServiceMock struct {
	submitRequestFn func(ctx context.Context, request models.RecoverySubmitRequest) (models.RecoveryRequest, error)
	getStatusFn     func(ctx context.Context, email string) (models.RecoveryStatusView, error)
}

func (m *recoveryServiceMock) SubmitRequest(ctx context.Context, request models.RecoverySubmitRequest) (models.RecoveryRequest, error) {
	return m.submitRequestFn(ctx, request)
}

func (m *recoveryServiceMock) GetStatus(ctx context.Context, email string) (models.RecoveryStatusView, error) {
	return m.getStatusFn(ctx, email)
}

type adminServiceMock struct {
	createUserFn  func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	listUsersFn   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getUserFn     func(ctx context.Context, userID string) (models.User, error)
	banUserFn     func(ctx context.Context, userID string, request models.BanUserRequest) (models.User, error)
	unbanUserFn   func(ctx context.Context, userID string) (models.User, error)
	listPendingFn func(ctx context.Context) ([]models.RecoveryRequest, error)
	approveFn     func(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error)
	rejectFn      func(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error)
	ensureAdminFn func(ctx context.Context, email, name, password string) error
}

func (m *adminServiceMock) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return m.createUserFn(ctx, request)
}

func (m *adminServiceMock) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFn(ctx, filter)
}

func (m *adminServiceMock) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *adminServiceMock) BanUser(ctx context.Context, userID string, request models.BanUserRequest) (models.User, error) {
	return m.banUserFn(ctx, userID, request)
}

func (m *adminServiceMock) UnbanUser(ctx context.Context, userID string) (models.User, error) {
	return m.unbanUserFn(ctx, userID)
}

func (m *adminServiceMock) ListPendingRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error) {
	return m.listPendingFn(ctx)
}

func (m *adminServiceMock) ApproveRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error) {
	return m.approveFn(ctx, requestID, request)
}

func (m *adminServiceMock) RejectRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error) {
	return m.rejectFn(ctx, requestID, request)
}

func (m *adminServiceMock) EnsureAdmin(ctx context.Context, email, name, password string) error {
	return m.ensureAdminFn(ctx, email, name, password)
}

type productServiceMock struct {
	listProductsFn func(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	getProductFn   func(ctx context.Context, productID int64) (models.Product, error)
}

func (m *productServiceMock) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return m.listProductsFn(ctx, filter)
}

func (m *productServiceMock) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return m.getProductFn(ctx, productID)
}

type appInfoServiceMock struct {
	info models.AppInfo
}

func (m *appInfoServiceMock) GetAppInfo(context.Context) models.AppInfo {
	return m.info
}
