package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockflow/internal/application/dto"
	"github.com/tu-usuario/stockflow/internal/application/usecase"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if existing, ok := r.products[p.ID]; ok {
		stock := existing.CurrentStock
		cp := *p
		cp.CurrentStock = stock
		r.products[p.ID] = &cp
	}
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, quantity int64) error {
	if p, ok := r.products[productID]; ok {
		p.CurrentStock = quantity
	}
	return nil
}

func (r *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:          "SKU-001",
		Name:         "Tornillo 3mm",
		UnitMeasure:  "unidad",
		ReorderLevel: 5,
		CostPrice:    decimal.NewFromInt(100),
		SellingPrice: decimal.NewFromInt(150),
	}
}

func TestProductCreate_StockInicialSiempreCero(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	// El stock solo lo mueve el ledger: ningún producto nace con existencias.
	assert.Equal(t, int64(0), out.CurrentStock)
	assert.True(t, out.LowStock, "con stock 0 y umbral 5 el producto nace en alerta")
	assert.True(t, out.IsActive)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sin sku", func(in *dto.CreateProductRequest) { in.SKU = "" }},
		{"sin nombre", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"umbral negativo", func(in *dto.CreateProductRequest) { in.ReorderLevel = -1 }},
		{"costo negativo", func(in *dto.CreateProductRequest) { in.CostPrice = decimal.NewFromInt(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateRequest()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStock(created.ID, 42))

	name := "Tornillo 3mm galvanizado"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, name, out.Name)
	assert.Equal(t, int64(42), out.CurrentStock, "actualizar el catálogo no altera el stock")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "x"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export CSV
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) SumByProduct(productID string) (int64, error) { return 0, nil }

func TestExportCSV_HistorialDeMovimientos(t *testing.T) {
	repo := &fakeMovementRepo{}
	when := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: "mov-1", ProductID: "prod-1", WarehouseID: "wh-1",
		Kind: entity.MovementKindReceipt, Quantity: 7,
		DocumentID: "doc-1", CreatedAt: when,
	}))
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: "mov-2", ProductID: "prod-1", WarehouseID: "wh-1",
		Kind: entity.MovementKindAdjustment, Quantity: -2,
		Note: "conteo físico", CreatedAt: when,
	}))

	uc := usecase.NewMovementExportUseCase(repo)
	out, err := uc.ExportCSV(repository.MovementFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "cabecera + una fila por movimiento")
	assert.Equal(t, "id,date,kind,product_id,warehouse_id,quantity,document_id,note", lines[0])
	assert.Contains(t, lines[1], "mov-1")
	assert.Contains(t, lines[1], "receipt")
	assert.Contains(t, lines[2], "-2")
	assert.Contains(t, lines[2], "conteo físico")
}

func TestExportCSV_SinMovimientos(t *testing.T) {
	uc := usecase.NewMovementExportUseCase(&fakeMovementRepo{})
	out, err := uc.ExportCSV(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Equal(t, "id,date,kind,product_id,warehouse_id,quantity,document_id,note",
		strings.TrimSpace(string(out)), "sin filas queda solo la cabecera")
}
