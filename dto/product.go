package dto

// CreateProductRequest is the request to add a catalog product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
	Discount    float64 `json:"discount"`
	Unit        string  `json:"unit"`
}

// UpdateProductRequest carries a partial product update
type UpdateProductRequest struct {
	ID          string   `json:"id" binding:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Featured    *bool    `json:"featured"`
	Discount    *float64 `json:"discount"`
	Unit        *string  `json:"unit"`
}

// ProductFilters are the catalog query parameters
type ProductFilters struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
