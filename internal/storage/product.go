package storage

type Product struct {
	ID              int64   `json:"id"`
	Article         string  `json:"article"`
	Name            string  `json:"name"`
	ProductTypeID   int64   `json:"product_type_id"`
	MaterialID      int64   `json:"material_id"`
	MinPartnerPrice float64 `json:"min_partner_price"`
}

// ProductDetails — продукт с названиями типа и материала для списка по макету
type ProductDetails struct {
	ID              int64   `json:"id"`
	Article         string  `json:"article"`
	Name            string  `json:"product_name"`
	ProductTypeID   int64   `json:"product_type_id"`
	ProductType     string  `json:"product_type"`
	MaterialID      int64   `json:"material_id"`
	MainMaterial    string  `json:"main_material"`
	MinPartnerPrice float64 `json:"min_partner_price"`
}

type ProductUpdate struct {
	Article         *string  `json:"article,omitempty"`
	Name            *string  `json:"name,omitempty"`
	ProductTypeID   *int64   `json:"product_type_id,omitempty"`
	MaterialID      *int64   `json:"material_id,omitempty"`
	MinPartnerPrice *float64 `json:"min_partner_price,omitempty"`
}
