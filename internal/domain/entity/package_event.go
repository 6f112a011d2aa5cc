package entity

import "time"

// PackageDeliveryEvent registra la llegada de unidades nuevas de un proveedor.
// Incrementa Inside y el total Quantity del empaque.
type PackageDeliveryEvent struct {
	ID          string
	PackageID   string
	UserID      string
	SupplierID  string
	Quantity    int // positivo
	Description string
	Date        time.Time
}

// PackageSendEvent registra el envío de unidades a un proveedor (Inside -> Outside).
type PackageSendEvent struct {
	ID          string
	PackageID   string
	UserID      string
	SupplierID  string
	Quantity    int // positivo
	Description string
	Date        time.Time
}

// PackageReceiveEvent registra la devolución de unidades enviadas, inspeccionadas
// contra una condición. Una condición sin pérdida regresa las unidades a Inside;
// cualquier otra las da de baja del total.
type PackageReceiveEvent struct {
	ID          string
	PackageID   string
	UserID      string
	SupplierID  string
	ConditionID string
	Quantity    int // positivo
	Description string
	Date        time.Time
}
