package repository

import "github.com/tu-usuario/stockflow/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock es de uso exclusivo del motor de inventario: Update nunca
// toca CurrentStock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro
	// de una transacción, para serializar la verificación y escritura de stock.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, quantity int64) error
	List(search string, limit, offset int) ([]*entity.Product, error)
}
