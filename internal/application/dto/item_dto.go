package dto

// CreateItemInput entrada para crear un item.
type CreateItemInput struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
}

// UpdateItemInput entrada para actualizar un item; los campos nil conservan el valor guardado.
type UpdateItemInput struct {
	ID       string   `json:"id" validate:"required,uuid"`
	Name     *string  `json:"name" validate:"omitempty,max=200"`
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
}
