package http_test

import (
	"context"

	"encore-backend/internal/domain"
	"encore-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error) {
	args := m.Called(ctx, userID, appType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) SaveDraft(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any) (*domain.Application, error) {
	args := m.Called(ctx, userID, appType, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) Submit(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any, photo *service.StagedPhoto, transform service.TransformFunc) (*domain.Application, error) {
	args := m.Called(ctx, userID, appType, form, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

// MockReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListApplications(ctx context.Context, adminID string) ([]domain.Application, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockReviewService) Approve(ctx context.Context, adminID, applicationID string, approved *domain.ApprovedProfile) (*domain.Application, error) {
	args := m.Called(ctx, adminID, applicationID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockReviewService) Reject(ctx context.Context, adminID, applicationID, reason string) (*domain.Application, error) {
	args := m.Called(ctx, adminID, applicationID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockReviewService) Finalize(ctx context.Context, adminID, applicationID string) (*domain.Application, error) {
	args := m.Called(ctx, adminID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
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
