package storage

type Workshop struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	WorkshopType  string `json:"workshop_type"`
	EmployeeCount int    `json:"employee_count"`
}

type WorkshopUpdate struct {
	Name          *string `json:"name,omitempty"`
	WorkshopType  *string `json:"workshop_type,omitempty"`
	EmployeeCount *int    `json:"employee_count,omitempty"`
}
