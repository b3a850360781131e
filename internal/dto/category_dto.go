package dto

type CreateCategoryRequest struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug,omitempty"`
	ParentID  *string `json:"parent_id,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
	Status    string  `json:"status,omitempty"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	ParentID  *string `json:"parent_id,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
	Status    *string `json:"status,omitempty"`
}
