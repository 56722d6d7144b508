package models

// Plan представляет тарифный план подписки.
// Период продления задаётся в месяцах и всегда больше нуля.
type Plan struct {
	ID            int    `json:"id"`             // Уникальный идентификатор плана
	Title         string `json:"title"`          // Название плана
	Description   string `json:"description"`    // Описание плана
	RenewalPeriod int    `json:"renewal_period"` // Период продления в месяцах (> 0)
}

// DummyPlan используется для приёма данных плана из JSON-запроса.
type DummyPlan struct {
	Title         string `json:"title" validate:"required"`              // Название плана
	Description   string `json:"description"`                            // Описание (опционально)
	RenewalPeriod int    `json:"renewal_period" validate:"required,gt=0"` // Период продления в месяцах
}
