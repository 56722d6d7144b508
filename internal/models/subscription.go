// Package models содержит доменную модель подписки на журнал.
package models

import "time"

// Subscription представляет подписку пользователя на журнал по выбранному плану.
// Цена фиксируется на момент создания и автоматически не пересчитывается.
// Удаление подписки выполняется мягко — сбросом флага IsActive.
type Subscription struct {
	ID              int       `json:"id"`                // Уникальный идентификатор подписки
	UserUID         string    `json:"user_uid"`          // Идентификатор пользователя (без внешнего ключа)
	MagazineID      int       `json:"magazine_id"`       // Идентификатор журнала
	PlanID          int       `json:"plan_id"`           // Идентификатор плана
	Price           float64   `json:"price"`             // Зафиксированная цена подписки
	NextRenewalDate time.Time `json:"next_renewal_date"` // Дата следующего продления
	IsActive        bool      `json:"is_active"`         // Признак активности подписки
}

// DummySubscription используется для приёма данных новой подписки из JSON-запроса.
// Цена в запросе не принимается: она вычисляется сервером из базовой цены
// журнала и скидки плана.
type DummySubscription struct {
	UserUID    string `json:"user_uid" validate:"required,uuid"` // Идентификатор пользователя
	MagazineID int    `json:"magazine_id" validate:"required"`   // Идентификатор журнала
	PlanID     int    `json:"plan_id" validate:"required"`       // Идентификатор плана
}

// DummySubscriptionUpdate используется для полного обновления подписки.
// Обновление заменяет все изменяемые поля значениями из запроса.
type DummySubscriptionUpdate struct {
	UserUID         string  `json:"user_uid" validate:"required,uuid"`    // Идентификатор пользователя
	MagazineID      int     `json:"magazine_id" validate:"required"`      // Идентификатор журнала
	PlanID          int     `json:"plan_id" validate:"required"`          // Идентификатор плана
	Price           float64 `json:"price" validate:"required,gt=0"`       // Цена подписки
	NextRenewalDate string  `json:"next_renewal_date" validate:"required"` // Дата следующего продления в формате 2006-01-02
	IsActive        bool    `json:"is_active"`                            // Признак активности
}
