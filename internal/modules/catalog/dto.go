package catalog

type CreateRequest struct {
	NameValue   string  `json:"name_value" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsRent      bool    `json:"is_rent"`
}

type UpdateRequest struct {
	NameValue   *string  `json:"name_value" binding:"omitempty"`
	Name        *string  `json:"name" binding:"omitempty"`
	Description *string  `json:"description" binding:"omitempty"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	IsRent      *bool    `json:"is_rent" binding:"omitempty"`
}
