package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// Nunca se elimina mientras existan documentos o movimientos que la referencien;
// para sacarla de operación se desactiva.
type Warehouse struct {
	ID        string
	Code      string // código único
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
