package dto

import "time"

// Requests y respuestas para las tablas de referencia que consume el ledger.

type CreateSupplierRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUnitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}

type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateParcelRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=60"`
	Weight    int    `json:"weight" validate:"gte=0"`
	Dimension string `json:"dimension" validate:"max=60"`
	Type      string `json:"type" validate:"max=60"`
}

type ParcelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    int       `json:"weight"`
	Dimension string    `json:"dimension,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateConditionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=60"`
	Lossless bool   `json:"lossless"`
}

type ConditionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lossless  bool      `json:"lossless"`
	CreatedAt time.Time `json:"created_at"`
}
