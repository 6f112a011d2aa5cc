package dto

import "time"

// CreatePackageRequest body para POST /api/packages.
// El empaque nace con quantity = inside = outside = 0; la creación no es
// una transición del ledger.
type CreatePackageRequest struct {
	ParcelID    string `json:"parcel_id" validate:"required,uuid"`
	Description string `json:"description" validate:"max=200"`
}

// PackageDeliveryRequest body para POST /api/packages/:id/delivery.
type PackageDeliveryRequest struct {
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	SupplierID  string `json:"supplier_id" validate:"required,uuid"`
	Description string `json:"description" validate:"max=200"`
}

// PackageSendRequest body para POST /api/packages/:id/send.
type PackageSendRequest struct {
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	SupplierID  string `json:"supplier_id" validate:"required,uuid"`
	Description string `json:"description" validate:"max=200"`
}

// PackageReceiveRequest body para POST /api/packages/:id/receive.
type PackageReceiveRequest struct {
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	SupplierID  string `json:"supplier_id" validate:"required,uuid"`
	ConditionID string `json:"condition_id" validate:"required,uuid"`
	Description string `json:"description" validate:"max=200"`
}

// PackageResponse representación de un empaque con sus cubetas.
type PackageResponse struct {
	ID          string    `json:"id"`
	ParcelID    string    `json:"parcel_id"`
	Quantity    int       `json:"quantity"`
	Inside      int       `json:"inside"`
	Outside     int       `json:"outside"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackageListResponse listado paginado.
type PackageListResponse struct {
	Items []PackageResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PackageEventResponse evento creado por el ledger de circulación.
type PackageEventResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"` // "delivery" | "send" | "receive"
	PackageID   string    `json:"package_id"`
	UserID      string    `json:"user_id"`
	SupplierID  string    `json:"supplier_id"`
	ConditionID string    `json:"condition_id,omitempty"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	// Cubetas resultantes tras la transición.
	Balance PackageBalance `json:"balance"`
}

// PackageBalance cubetas resultantes.
type PackageBalance struct {
	Quantity int `json:"quantity"`
	Inside   int `json:"inside"`
	Outside  int `json:"outside"`
}
