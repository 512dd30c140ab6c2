package storage

// ProductWorkshop — строка связи многие-ко-многим продукт—цех.
// Пара (product_id, workshop_id) уникальна, это держит сама база
type ProductWorkshop struct {
	ProductID              int64   `json:"product_id"`
	WorkshopID             int64   `json:"workshop_id"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}

// WorkshopTime — цех со временем изготовления конкретного продукта
type WorkshopTime struct {
	WorkshopID             int64   `json:"workshop_id"`
	WorkshopName           string  `json:"workshop_name"`
	WorkshopType           string  `json:"workshop_type"`
	EmployeeCount          int     `json:"employee_count"`
	ManufacturingTimeHours float64 `json:"manufacturing_time_hours"`
}
