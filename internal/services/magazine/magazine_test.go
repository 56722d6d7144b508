package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/magazine"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error) {
	args := m.Called(ctx, magazine)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Magazine), args.Error(1)
}

func (m *RepoMock) ListMagazines(ctx context.Context) ([]*models.Magazine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Magazine), args.Error(1)
}

func (m *RepoMock) UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error) {
	args := m.Called(ctx, magazine, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) RemoveMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Magazine), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func passiveCache() *CacheMock {
	cache := new(CacheMock)
	cache.On("Get", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.On("Invalidate", mock.Anything).Return(nil).Maybe()
	return cache
}

func TestMagazineService_CreateAndRead_RoundTrip(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateMagazine", mock.Anything, mock.MatchedBy(func(m models.Magazine) bool {
		return m.Name == "Nature" && m.BasePrice == 10
	})).Return(5, nil).Once()
	repo.On("ReadMagazine", mock.Anything, 5).
		Return(&models.Magazine{ID: 5, Name: "Nature", BasePrice: 10}, nil).Once()

	svc := services.NewMagazineService(repo, passiveCache(), newLogger())

	created, err := svc.Create(context.Background(), models.DummyMagazine{
		Name:      "Nature",
		BasePrice: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	read, err := svc.Read(context.Background(), 5)
	require.NoError(t, err)
	// базовая цена возвращается без искажений
	assert.Equal(t, 10.0, read.BasePrice)
	repo.AssertExpectations(t)
}

func TestMagazineService_Remove_ReturnsDeletedRecord(t *testing.T) {
	repo := new(RepoMock)
	deleted := &models.Magazine{ID: 5, Name: "Nature", BasePrice: 10}
	repo.On("RemoveMagazine", mock.Anything, 5).Return(deleted, nil).Once()

	cache := new(CacheMock)
	cache.On("Invalidate", "magazine:5").Return(nil).Once()

	svc := services.NewMagazineService(repo, cache, newLogger())

	got, err := svc.Remove(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Nature", got.Name)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestMagazineService_Remove_Twice(t *testing.T) {
	repo := new(RepoMock)
	repo.On("RemoveMagazine", mock.Anything, 5).
		Return(&models.Magazine{ID: 5, Name: "Nature", BasePrice: 10}, nil).Once()
	repo.On("RemoveMagazine", mock.Anything, 5).
		Return(nil, repository.ErrNotFound).Once()

	svc := services.NewMagazineService(repo, passiveCache(), newLogger())

	_, err := svc.Remove(context.Background(), 5)
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	repo.AssertExpectations(t)
}

func TestMagazineService_Update_FullReplace(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UpdateMagazine", mock.Anything, mock.MatchedBy(func(m models.Magazine) bool {
		return m.Name == "Science" && m.BasePrice == 20 && m.DiscountAnnual == 0.5
	}), 5).Return(1, nil).Once()

	svc := services.NewMagazineService(repo, passiveCache(), newLogger())

	updated, err := svc.Update(context.Background(), models.DummyMagazine{
		Name:           "Science",
		BasePrice:      20,
		DiscountAnnual: 0.5,
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, "Science", updated.Name)
	repo.AssertExpectations(t)
}
