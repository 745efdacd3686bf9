package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stockflow/internal/application/ledger"
	"github.com/tu-usuario/stockflow/internal/domain"
	"github.com/tu-usuario/stockflow/internal/domain/entity"
	"github.com/tu-usuario/stockflow/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner imita la semántica transaccional real:
// toma un snapshot del estado antes de ejecutar fn y lo restaura si fn
// devuelve error, de modo que los tests de todo-o-nada son fieles.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

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

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

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

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	snap := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = *p
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(snap))
	for id := range snap {
		p := snap[id]
		r.products[id] = &p
	}
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Code == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.warehouses))
	for _, w := range r.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo { return &fakeMovementRepo{} }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && m.WarehouseID != filter.WarehouseID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	docs      repository.DocumentRepository
}

func (t *fakeTxRunner) Run(
	_ context.Context,
	fn func(repository.StockMovementRepository, repository.ProductRepository, repository.DocumentRepository) error,
) error {
	prodSnap := t.products.snapshot()
	movSnap := make([]*entity.StockMovement, len(t.movements.movements))
	copy(movSnap, t.movements.movements)

	if err := fn(t.movements, t.products, t.docs); err != nil {
		t.products.restore(prodSnap)
		t.movements.movements = movSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type engineFixture struct {
	engine    *ledger.Engine
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func newEngineFixture(t *testing.T, initialStock int64) *engineFixture {
	t.Helper()
	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()
	movements := newFakeMovementRepo()

	require.NoError(t, products.Create(&entity.Product{
		ID: "prod-1", SKU: "SKU-001", Name: "Tornillo 3mm",
		CurrentStock: initialStock, ReorderLevel: 5, IsActive: true,
	}))
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: "wh-1", Code: "BOD-01", Name: "Bodega Central", IsActive: true,
	}))

	tx := &fakeTxRunner{products: products, movements: movements}
	return &engineFixture{
		engine:    ledger.NewEngine(tx, products, warehouses, movements),
		products:  products,
		movements: movements,
	}
}

func (f *engineFixture) stock(t *testing.T) int64 {
	t.Helper()
	p, err := f.products.GetByID("prod-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.CurrentStock
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_RecepcionAumentaStock(t *testing.T) {
	f := newEngineFixture(t, 10)

	id, err := f.engine.Record(context.Background(), ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: 7, Kind: entity.MovementKindReceipt, Note: "compra",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, int64(17), f.stock(t))
	assert.Len(t, f.movements.movements, 1)
	assert.Equal(t, int64(7), f.movements.movements[0].Quantity)
}

func TestRecord_EntregaDescuentaStock(t *testing.T) {
	f := newEngineFixture(t, 10)

	_, err := f.engine.Record(context.Background(), ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: -4, Kind: entity.MovementKindDelivery,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), f.stock(t))
}

func TestRecord_EntregaBajoPisoRechazada(t *testing.T) {
	f := newEngineFixture(t, 5)

	_, err := f.engine.Record(context.Background(), ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: -10, Kind: entity.MovementKindDelivery,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni el stock ni el ledger deben cambiar tras el rechazo.
	assert.Equal(t, int64(5), f.stock(t))
	assert.Empty(t, f.movements.movements)
}

func TestRecord_AjusteExentoDelPiso(t *testing.T) {
	f := newEngineFixture(t, 5)

	// Un ajuste puede dejar el stock negativo: es el primitivo de corrección
	// manual contra el conteo físico.
	_, err := f.engine.Record(context.Background(), ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: -10, Kind: entity.MovementKindAdjustment, Note: "conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), f.stock(t))
}

func TestRecord_ValidacionesDeEntrada(t *testing.T) {
	f := newEngineFixture(t, 10)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ledger.RecordInput
		want  error
	}{
		{
			name:  "tipo desconocido",
			input: ledger.RecordInput{ProductID: "prod-1", WarehouseID: "wh-1", Delta: 1, Kind: "transfer"},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "delta cero",
			input: ledger.RecordInput{ProductID: "prod-1", WarehouseID: "wh-1", Delta: 0, Kind: entity.MovementKindAdjustment},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "recepción con delta negativo",
			input: ledger.RecordInput{ProductID: "prod-1", WarehouseID: "wh-1", Delta: -1, Kind: entity.MovementKindReceipt},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "entrega con delta positivo",
			input: ledger.RecordInput{ProductID: "prod-1", WarehouseID: "wh-1", Delta: 1, Kind: entity.MovementKindDelivery},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "producto desconocido",
			input: ledger.RecordInput{ProductID: "no-existe", WarehouseID: "wh-1", Delta: 1, Kind: entity.MovementKindReceipt},
			want:  domain.ErrUnknownProduct,
		},
		{
			name:  "bodega desconocida",
			input: ledger.RecordInput{ProductID: "prod-1", WarehouseID: "no-existe", Delta: 1, Kind: entity.MovementKindReceipt},
			want:  domain.ErrUnknownWarehouse,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.engine.Record(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Nada debió quedar escrito.
	assert.Equal(t, int64(10), f.stock(t))
	assert.Empty(t, f.movements.movements)
}

func TestRecord_ProductoInactivoRechazado(t *testing.T) {
	f := newEngineFixture(t, 10)
	f.products.products["prod-1"].IsActive = false

	_, err := f.engine.Record(context.Background(), ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: 1, Kind: entity.MovementKindReceipt,
	})
	assert.ErrorIs(t, err, domain.ErrInactiveEntity)
}

func TestRecomputeStock_CoincideConCache(t *testing.T) {
	f := newEngineFixture(t, 0)
	ctx := context.Background()

	deltas := []struct {
		delta int64
		kind  string
	}{
		{20, entity.MovementKindReceipt},
		{-6, entity.MovementKindDelivery},
		{-3, entity.MovementKindAdjustment},
		{4, entity.MovementKindAdjustment},
	}
	for _, d := range deltas {
		_, err := f.engine.Record(ctx, ledger.RecordInput{
			ProductID: "prod-1", WarehouseID: "wh-1", Delta: d.delta, Kind: d.kind,
		})
		require.NoError(t, err)
	}

	cached, err := f.engine.CurrentStock(ctx, "prod-1")
	require.NoError(t, err)
	fromLedger, err := f.engine.RecomputeStock(ctx, "prod-1")
	require.NoError(t, err)

	// Invariante central: la proyección cacheada es siempre la suma con signo
	// de todas las entradas del ledger.
	assert.Equal(t, int64(15), cached)
	assert.Equal(t, cached, fromLedger)

	status, err := f.engine.StockStatus(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, cached, status.CurrentStock)
	assert.Equal(t, fromLedger, status.LedgerStock)
	assert.Equal(t, int64(5), status.ReorderLevel)
	assert.False(t, status.LowStock)
}

func TestIsLowStock_Umbral(t *testing.T) {
	f := newEngineFixture(t, 6) // reorder_level = 5
	ctx := context.Background()

	low, err := f.engine.IsLowStock(ctx, "prod-1")
	require.NoError(t, err)
	assert.False(t, low, "por encima del umbral no hay alerta")

	_, err = f.engine.Record(ctx, ledger.RecordInput{
		ProductID: "prod-1", WarehouseID: "wh-1",
		Delta: -1, Kind: entity.MovementKindDelivery,
	})
	require.NoError(t, err)

	low, err = f.engine.IsLowStock(ctx, "prod-1")
	require.NoError(t, err)
	assert.True(t, low, "el umbral es inclusivo: stock == reorder_level alerta")
}
