package storage

// MaterialType — тип материала. LossPercentage хранится как процент (0.8 = 0.8%),
// никогда как доля. Единственное деление на 100 живёт в формуле расчёта сырья.
type MaterialType struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	LossPercentage float64 `json:"loss_percentage"`
}

// ProductType — тип продукции с коэффициентом расхода сырья
type ProductType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}

type MaterialTypeUpdate struct {
	Name           *string  `json:"name,omitempty"`
	LossPercentage *float64 `json:"loss_percentage,omitempty"`
}

type ProductTypeUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Coefficient *float64 `json:"coefficient,omitempty"`
}
