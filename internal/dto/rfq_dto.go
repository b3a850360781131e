package dto

type CreateRFQRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	CategoryID  *string  `json:"category_id,omitempty"`
	TargetPrice *float64 `json:"target_price,omitempty"`
	Country     string   `json:"country,omitempty"`
}

type UpdateRFQStatusRequest struct {
	Status string `json:"status"`
}
