// Package services содержит бизнес-логику для управления тарифными планами.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// PlanRepository определяет методы для работы с планами в хранилище.
type PlanRepository interface {
	// CreatePlan добавляет новый план и возвращает его ID.
	CreatePlan(ctx context.Context, plan models.Plan) (int, error)
	// ReadPlan возвращает план по ID.
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
	// ListPlans возвращает список всех планов.
	ListPlans(ctx context.Context) ([]*models.Plan, error)
	// UpdatePlan обновляет данные плана по ID.
	UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error)
	// RemovePlan удаляет план по ID и возвращает удалённую запись.
	RemovePlan(ctx context.Context, id int) (*models.Plan, error)
}

// PlanService реализует бизнес-логику работы с планами.
type PlanService struct {
	repo PlanRepository
	log  *slog.Logger
}

// NewPlanService создает новый экземпляр PlanService.
func NewPlanService(repo PlanRepository, log *slog.Logger) *PlanService {
	return &PlanService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый план и возвращает запись с присвоенным ID.
func (s *PlanService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	plan := models.Plan{
		Title:         req.Title,
		Description:   req.Description,
		RenewalPeriod: req.RenewalPeriod,
	}
	id, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	s.log.Info("created new plan", slog.Int("id", id))
	return &plan, nil
}

// Read возвращает план по ID.
func (s *PlanService) Read(ctx context.Context, id int) (*models.Plan, error) {
	return s.repo.ReadPlan(ctx, id)
}

// List возвращает все планы.
func (s *PlanService) List(ctx context.Context) ([]*models.Plan, error) {
	return s.repo.ListPlans(ctx)
}

// Update полностью заменяет изменяемые поля плана.
func (s *PlanService) Update(ctx context.Context, req models.DummyPlan, id int) (*models.Plan, error) {
	plan := models.Plan{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		RenewalPeriod: req.RenewalPeriod,
	}
	if _, err := s.repo.UpdatePlan(ctx, plan, id); err != nil {
		return nil, err
	}
	s.log.Info("updated plan in storage", slog.Int("id", id))
	return &plan, nil
}

// Remove удаляет план навсегда и возвращает последние значения удалённой записи.
func (s *PlanService) Remove(ctx context.Context, id int) (*models.Plan, error) {
	return s.repo.RemovePlan(ctx, id)
}
