package service_test

import (
	"context"
	"io"
	"time"

	"encore-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error) {
	args := m.Called(ctx, userID, appType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserProfileRepo
type MockUserProfileRepo struct {
	mock.Mock
}

func (m *MockUserProfileRepo) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileRepo) MarkApplied(ctx context.Context, userID, applicationID string) error {
	args := m.Called(ctx, userID, applicationID)
	return args.Error(0)
}
func (m *MockUserProfileRepo) SetRole(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// MockTalentRepo
type MockTalentRepo struct {
	mock.Mock
}

func (m *MockTalentRepo) HasProfile(ctx context.Context, appType domain.ApplicationType, userID string) (bool, error) {
	args := m.Called(ctx, appType, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockTalentRepo) CreateArtist(ctx context.Context, p *domain.ArtistProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockTalentRepo) CreateIndustryPro(ctx context.Context, p *domain.IndustryProProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockTalentRepo) CreateInstrumentalist(ctx context.Context, p *domain.InstrumentalistProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockTalentRepo) ListArtists(ctx context.Context) ([]domain.ArtistProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ArtistProfile), args.Error(1)
}
func (m *MockTalentRepo) ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IndustryProProfile), args.Error(1)
}
func (m *MockTalentRepo) ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InstrumentalistProfile), args.Error(1)
}

// MockObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string, overwrite bool) (string, error) {
	args := m.Called(ctx, key, r, contentType, overwrite)
	return args.String(0), args.Error(1)
}
func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationReceived(ctx context.Context, email, name string, appType domain.ApplicationType) error {
	args := m.Called(ctx, email, name, appType)
	return args.Error(0)
}
func (m *MockEmailService) SendDecisionNotification(ctx context.Context, email, name string, appType domain.ApplicationType, status domain.ApplicationStatus, reason string) error {
	args := m.Called(ctx, email, name, appType, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendProfileLive(ctx context.Context, email, name string, appType domain.ApplicationType) error {
	args := m.Called(ctx, email, name, appType)
	return args.Error(0)
}

// MockTalentService
type MockTalentService struct {
	mock.Mock
}

func (m *MockTalentService) ListArtists(ctx context.Context) ([]domain.ArtistProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ArtistProfile), args.Error(1)
}
func (m *MockTalentService) ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IndustryProProfile), args.Error(1)
}
func (m *MockTalentService) ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InstrumentalistProfile), args.Error(1)
}
func (m *MockTalentService) InvalidateListings(appType domain.ApplicationType) {
	m.Called(appType)
}
