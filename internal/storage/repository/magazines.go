package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// CreateMagazine вставляет новый журнал и возвращает его ID.
func (s *Storage) CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error) {
	const op = "storage.CreateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO magazines (name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		magazine.Name, magazine.Description, magazine.BasePrice,
		magazine.DiscountQuarterly, magazine.DiscountHalfYearly, magazine.DiscountAnnual).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMagazine возвращает журнал по его ID.
func (s *Storage) ReadMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	const op = "storage.ReadMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual
			  FROM magazines WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Magazine
	if err := row.Scan(&result.ID, &result.Name, &result.Description, &result.BasePrice,
		&result.DiscountQuarterly, &result.DiscountHalfYearly, &result.DiscountAnnual); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListMagazines возвращает список всех журналов в порядке вставки.
func (s *Storage) ListMagazines(ctx context.Context) ([]*models.Magazine, error) {
	const op = "storage.ListMagazines"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual
			  FROM magazines
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Magazine
	for rows.Next() {
		var item models.Magazine
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
			&item.DiscountQuarterly, &item.DiscountHalfYearly, &item.DiscountAnnual); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMagazine полностью заменяет изменяемые поля журнала по его ID.
func (s *Storage) UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error) {
	const op = "storage.UpdateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE magazines
			  SET name = $1, description = $2, base_price = $3,
			      discount_quarterly = $4, discount_half_yearly = $5, discount_annual = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		magazine.Name, magazine.Description, magazine.BasePrice,
		magazine.DiscountQuarterly, magazine.DiscountHalfYearly, magazine.DiscountAnnual, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return int(rowsAffected), nil
}

// RemoveMagazine удаляет журнал по ID и возвращает последние значения удалённой записи.
func (s *Storage) RemoveMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	const op = "storage.RemoveMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM magazines WHERE id = $1
			  RETURNING id, name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Magazine
	if err := row.Scan(&result.ID, &result.Name, &result.Description, &result.BasePrice,
		&result.DiscountQuarterly, &result.DiscountHalfYearly, &result.DiscountAnnual); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
