package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida: debe ser un entero positivo")
	ErrInsufficientStock = errors.New("stock insuficiente para la operación")
	ErrConfiguration     = errors.New("configuración de condiciones inconsistente")
	ErrConflict          = errors.New("conflicto de concurrencia; reintentar la operación")
	ErrDuplicate         = errors.New("recurso duplicado")
)
