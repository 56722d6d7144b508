// Package services содержит бизнес-логику для управления подписками,
// включая вычисление цены и кеширование.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// ErrInvalidRenewalDate возвращается, когда дата следующего продления
// не соответствует формату 2006-01-02.
var ErrInvalidRenewalDate = errors.New("invalid next renewal date, expected format 2006-01-02")

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// ReadSubscription возвращает подписку по ID.
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// ListSubscriptions возвращает список всех подписок.
	ListSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	// UpdateSubscription обновляет данные подписки по ID.
	UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error)
	// DeactivateSubscription сбрасывает флаг активности подписки.
	DeactivateSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// ReadMagazine возвращает журнал по ID.
	ReadMagazine(ctx context.Context, id int) (*models.Magazine, error)
	// ReadPlan возвращает план по ID.
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
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

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo  SubscriptionRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// discountFor возвращает скидку журнала для периода продления плана.
// Периоды 3, 6 и 12 месяцев соответствуют квартальной, полугодовой
// и годовой скидкам, остальные периоды скидки не имеют.
func discountFor(magazine *models.Magazine, renewalPeriod int) float64 {
	switch renewalPeriod {
	case 3:
		return magazine.DiscountQuarterly
	case 6:
		return magazine.DiscountHalfYearly
	case 12:
		return magazine.DiscountAnnual
	default:
		return 0
	}
}

// CalculatePrice вычисляет цену подписки из базовой цены журнала
// и скидки, соответствующей периоду продления плана.
func CalculatePrice(magazine *models.Magazine, plan *models.Plan) float64 {
	return magazine.BasePrice * (1 - discountFor(magazine, plan.RenewalPeriod))
}

// Create создает новую подписку. Цена не принимается от клиента,
// а вычисляется сервером и фиксируется на момент создания.
// Дата следующего продления отстоит от текущего момента на период плана.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	magazine, err := s.repo.ReadMagazine(ctx, req.MagazineID)
	if err != nil {
		return nil, err
	}
	plan, err := s.repo.ReadPlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	sub := models.Subscription{
		UserUID:         req.UserUID,
		MagazineID:      req.MagazineID,
		PlanID:          req.PlanID,
		Price:           CalculatePrice(magazine, plan),
		NextRenewalDate: time.Now().UTC().AddDate(0, plan.RenewalPeriod, 0).Truncate(24 * time.Hour),
		IsActive:        true,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	s.log.Info("created new subscription", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &sub, nil
}

// Read возвращает подписку по ID, используя кеш или репозиторий.
func (s *SubscriptionService) Read(ctx context.Context, id int) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает все подписки.
func (s *SubscriptionService) List(ctx context.Context) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

// Update полностью заменяет все изменяемые поля подписки значениями
// из запроса, включая цену и флаг активности, и обновляет кеш.
func (s *SubscriptionService) Update(ctx context.Context, req models.DummySubscriptionUpdate, id int) (*models.Subscription, error) {
	nextRenewalDate, err := time.Parse("2006-01-02", req.NextRenewalDate)
	if err != nil {
		return nil, fmt.Errorf("update: %w", ErrInvalidRenewalDate)
	}

	sub := models.Subscription{
		ID:              id,
		UserUID:         req.UserUID,
		MagazineID:      req.MagazineID,
		PlanID:          req.PlanID,
		Price:           req.Price,
		NextRenewalDate: nextRenewalDate,
		IsActive:        req.IsActive,
	}
	if _, err := s.repo.UpdateSubscription(ctx, sub, id); err != nil {
		return nil, err
	}
	s.log.Info("updated subscription in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &sub, nil
}

// Remove мягко деактивирует подписку: строка остаётся в таблице
// с is_active = false. Кеш инвалидируется.
func (s *SubscriptionService) Remove(ctx context.Context, id int) (*models.Subscription, error) {
	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.DeactivateSubscription(ctx, id)
}
