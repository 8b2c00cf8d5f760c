package tests

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Swati-d16/Product-Inventory/internal/dto"
	"github.com/Swati-d16/Product-Inventory/internal/model"
	"github.com/Swati-d16/Product-Inventory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(repo *stubProductRepo, logs *stubLogRepo) service.ProductService {
	return service.NewProductService(repo, logs, nil, 0)
}

func intPtr(v int) dto.OptionalInt {
	return dto.OptionalInt{Present: true, Valid: true, Value: v}
}

func strPtr(s string) *string { return &s }

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateDerivesStatusFromStock(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})

	inStock, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Hammer", Unit: "pcs", Category: "Tools", Brand: "Acme", Stock: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInStock, inStock.Status)

	outOfStock, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Saw", Unit: "pcs", Category: "Tools", Brand: "Acme", Stock: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOutOfStock, outOfStock.Status)
}

func TestCreateOmittedStockDefaultsToZero(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Hammer", Unit: "pcs", Category: "Tools", Brand: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, model.StatusOutOfStock, resp.Status)
}

func TestCreateNegativeStockRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Hammer", Stock: intPtr(-5),
	})
	require.Error(t, err)
	assert.Equal(t, "Stock must be a number >= 0", err.Error())
	assert.Empty(t, repo.products)
}

func TestCreateNonNumericStockRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})

	var req dto.CreateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Hammer","stock":"abc"}`), &req))

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Stock must be a number >= 0", err.Error())
	assert.Empty(t, repo.products)
}

// ── Update: stock / status consistency ───────────────────────────────────────

func TestUpdateStockRecomputesStatusAndWritesHistory(t *testing.T) {
	repo := newStubProductRepo()
	logs := &stubLogRepo{}
	svc := newProductService(repo, logs)
	p := seedProduct(repo, "Hammer", "Tools", 5)

	resp, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Stock: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, model.StatusOutOfStock, resp.Status)

	history, err := logs.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 5, history[0].OldStock)
	assert.Equal(t, 0, history[0].NewStock)
	assert.Equal(t, "alice", history[0].ChangedBy)
}

func TestUpdateUnchangedStockWritesNoHistory(t *testing.T) {
	repo := newStubProductRepo()
	logs := &stubLogRepo{}
	svc := newProductService(repo, logs)
	p := seedProduct(repo, "Hammer", "Tools", 5)

	_, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Stock: intPtr(5),
	})
	require.NoError(t, err)

	history, err := logs.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateNegativeStockRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	p := seedProduct(repo, "Hammer", "Tools", 5)

	_, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Stock: intPtr(-1),
	})
	require.Error(t, err)
	assert.Equal(t, "Stock must be a number >= 0", err.Error())

	// Stored record unchanged
	assert.Equal(t, 5, repo.products[p.ID].Stock)
	assert.Equal(t, model.StatusInStock, repo.products[p.ID].Status)
}

func TestUpdateNonNumericStockRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	p := seedProduct(repo, "Hammer", "Tools", 5)

	var req dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"stock":"abc"}`), &req))

	_, err := svc.Update(context.Background(), p.ID, "alice", req)
	require.Error(t, err)
	assert.Equal(t, "Stock must be a number >= 0", err.Error())
	assert.Equal(t, 5, repo.products[p.ID].Stock)
}

// ── Update: name conflicts ───────────────────────────────────────────────────

func TestUpdateNameConflictRejected(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	seedProduct(repo, "Hammer", "Tools", 5)
	p := seedProduct(repo, "Saw", "Tools", 2)

	_, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Name: strPtr("hAMMER"),
	})
	require.Error(t, err)
	assert.Equal(t, "Product name already exists", err.Error())
	assert.Equal(t, "Saw", repo.products[p.ID].Name)
}

func TestUpdateOwnNameExcludedFromConflictCheck(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	p := seedProduct(repo, "Hammer", "Tools", 5)

	resp, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Name: strPtr("HAMMER"),
	})
	require.NoError(t, err)
	assert.Equal(t, "HAMMER", resp.Name)
}

// ── Delete / history retention ───────────────────────────────────────────────

func TestDeleteRetainsHistory(t *testing.T) {
	repo := newStubProductRepo()
	logs := &stubLogRepo{}
	svc := newProductService(repo, logs)
	p := seedProduct(repo, "Hammer", "Tools", 5)

	_, err := svc.Update(context.Background(), p.ID, "alice", dto.UpdateProductRequest{
		Stock: intPtr(2),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	_, err = svc.GetByID(context.Background(), p.ID)
	assert.Error(t, err)

	history, err := logs.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

// ── Listing / search / categories ────────────────────────────────────────────

func TestListFiltersByCategory(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	seedProduct(repo, "Hammer", "Tools", 5)
	seedProduct(repo, "Milk", "Food", 10)

	all, err := svc.List(context.Background(), dto.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tools, err := svc.List(context.Background(), dto.ProductFilter{Category: "Tools"})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Hammer", tools[0].Name)
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	seedProduct(repo, "Claw Hammer", "Tools", 5)
	seedProduct(repo, "Saw", "Tools", 2)

	results, err := svc.Search(context.Background(), "hamm")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Claw Hammer", results[0].Name)
}

func TestCategoriesDistinctAndSorted(t *testing.T) {
	repo := newStubProductRepo()
	svc := newProductService(repo, &stubLogRepo{})
	seedProduct(repo, "Hammer", "Tools", 5)
	seedProduct(repo, "Saw", "Tools", 2)
	seedProduct(repo, "Milk", "Food", 1)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Tools"}, categories)
}
