package dto

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	MinOrderQty *int     `json:"min_order_qty,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	Images      []string `json:"images,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	MinOrderQty *int     `json:"min_order_qty,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	Images      []string `json:"images,omitempty"`
	Status      *string  `json:"status,omitempty"`
}
