// Package services содержит бизнес-логику для управления журналами и их кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// MagazineRepository определяет методы для работы с журналами в хранилище.
type MagazineRepository interface {
	// CreateMagazine добавляет новый журнал и возвращает его ID.
	CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error)
	// ReadMagazine возвращает журнал по ID.
	ReadMagazine(ctx context.Context, id int) (*models.Magazine, error)
	// ListMagazines возвращает список всех журналов.
	ListMagazines(ctx context.Context) ([]*models.Magazine, error)
	// UpdateMagazine обновляет данные журнала по ID.
	UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error)
	// RemoveMagazine удаляет журнал по ID и возвращает удалённую запись.
	RemoveMagazine(ctx context.Context, id int) (*models.Magazine, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// MagazineService реализует бизнес-логику работы с журналами, включая кеширование.
type MagazineService struct {
	repo  MagazineRepository
	cache Cache
	log   *slog.Logger
}

// NewMagazineService создает новый экземпляр MagazineService.
func NewMagazineService(repo MagazineRepository, cache Cache, log *slog.Logger) *MagazineService {
	return &MagazineService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый журнал, кеширует его и возвращает запись с присвоенным ID.
func (s *MagazineService) Create(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error) {
	magazine := models.Magazine{
		Name:               req.Name,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		DiscountQuarterly:  req.DiscountQuarterly,
		DiscountHalfYearly: req.DiscountHalfYearly,
		DiscountAnnual:     req.DiscountAnnual,
	}
	id, err := s.repo.CreateMagazine(ctx, magazine)
	if err != nil {
		return nil, err
	}
	magazine.ID = id
	s.log.Info("created new magazine", slog.Int("id", id))

	cacheKey := fmt.Sprintf("magazine:%d", id)
	if err := s.cache.Set(cacheKey, magazine, time.Hour); err != nil {
		s.log.Warn("failed to cache magazine", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &magazine, nil
}

// Read возвращает журнал по ID, используя кеш или репозиторий.
func (s *MagazineService) Read(ctx context.Context, id int) (*models.Magazine, error) {
	var result *models.Magazine
	cacheKey := fmt.Sprintf("magazine:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMagazine(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает все журналы.
func (s *MagazineService) List(ctx context.Context) ([]*models.Magazine, error) {
	return s.repo.ListMagazines(ctx)
}

// Update полностью заменяет изменяемые поля журнала и обновляет кеш.
func (s *MagazineService) Update(ctx context.Context, req models.DummyMagazine, id int) (*models.Magazine, error) {
	magazine := models.Magazine{
		ID:                 id,
		Name:               req.Name,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		DiscountQuarterly:  req.DiscountQuarterly,
		DiscountHalfYearly: req.DiscountHalfYearly,
		DiscountAnnual:     req.DiscountAnnual,
	}
	if _, err := s.repo.UpdateMagazine(ctx, magazine, id); err != nil {
		return nil, err
	}
	s.log.Info("updated magazine in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("magazine:%d", id)
	if err := s.cache.Set(cacheKey, magazine, time.Hour); err != nil {
		s.log.Warn("failed to cache magazine", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &magazine, nil
}

// Remove удаляет журнал навсегда, инвалидирует кеш
// и возвращает последние значения удалённой записи.
func (s *MagazineService) Remove(ctx context.Context, id int) (*models.Magazine, error) {
	cacheKey := fmt.Sprintf("magazine:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.RemoveMagazine(ctx, id)
}
