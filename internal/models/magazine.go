// Package models содержит доменную модель журнала и структуру
// для приёма данных журнала из JSON-запросов.
package models

// Magazine представляет журнал, на который можно оформить подписку.
// Базовая цена всегда больше нуля, скидки задаются долями от единицы
// для квартального, полугодового и годового периодов продления.
type Magazine struct {
	ID                 int     `json:"id"`                   // Уникальный идентификатор журнала
	Name               string  `json:"name"`                 // Название журнала
	Description        string  `json:"description"`          // Описание журнала
	BasePrice          float64 `json:"base_price"`           // Базовая цена за месяц (> 0)
	DiscountQuarterly  float64 `json:"discount_quarterly"`   // Скидка при квартальном продлении
	DiscountHalfYearly float64 `json:"discount_half_yearly"` // Скидка при полугодовом продлении
	DiscountAnnual     float64 `json:"discount_annual"`      // Скидка при годовом продлении
}

// DummyMagazine используется для приёма данных журнала из JSON-запроса,
// одинаково для создания и полного обновления.
type DummyMagazine struct {
	Name               string  `json:"name" validate:"required"`                    // Название журнала
	Description        string  `json:"description"`                                 // Описание (опционально)
	BasePrice          float64 `json:"base_price" validate:"required,gt=0"`         // Базовая цена (> 0)
	DiscountQuarterly  float64 `json:"discount_quarterly" validate:"gte=0,lt=1"`    // Скидка за квартал
	DiscountHalfYearly float64 `json:"discount_half_yearly" validate:"gte=0,lt=1"`  // Скидка за полугодие
	DiscountAnnual     float64 `json:"discount_annual" validate:"gte=0,lt=1"`       // Скидка за год
}
