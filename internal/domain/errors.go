package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables:
// los handlers HTTP los traducen a códigos de estado, nunca tumban el proceso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnknownProduct     = errors.New("producto no encontrado")
	ErrUnknownWarehouse   = errors.New("bodega no encontrada")
	ErrInactiveEntity     = errors.New("producto o bodega inactivos")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrDuplicateReference = errors.New("ya existe un documento de ese tipo con esa referencia")
	ErrEmptyLines         = errors.New("el documento no tiene líneas")
	ErrInvalidLine        = errors.New("línea de documento inválida")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
)
