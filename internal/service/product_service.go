package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Swati-d16/Product-Inventory/internal/dto"
	"github.com/Swati-d16/Product-Inventory/internal/model"
	"github.com/Swati-d16/Product-Inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Sentinel errors mapped to 4xx responses by the handler layer. The messages
// are part of the API contract consumed by the UI — do not reword.
var (
	ErrProductNotFound = errors.New("Product not found")
	ErrNameConflict    = errors.New("Product name already exists")
	ErrInvalidStock    = errors.New("Stock must be a number >= 0")
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Search(ctx context.Context, name string) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, actor string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, productID uuid.UUID) ([]dto.InventoryLogResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type productService struct {
	repo     repository.ProductRepository
	logs     repository.InventoryLogRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewProductService(repo repository.ProductRepository, logs repository.InventoryLogRepository, rdb *redis.Client, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, logs: logs, rdb: rdb, cacheTTL: cacheTTL}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// Same stock rule as Update; an omitted stock field means 0.
	if req.Stock.Present && (!req.Stock.Valid || req.Stock.Value < 0) {
		return nil, ErrInvalidStock
	}
	stock := 0
	if req.Stock.Present {
		stock = req.Stock.Value
	}

	p := &model.Product{
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    stock,
		// Status is never trusted from the client — always derived from stock.
		Status: model.StatusForStock(stock),
		Image:  req.Image,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	invalidateCategories(ctx, s.rdb)
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

func (s *productService) Search(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, dto.ProductFilter{Name: name})
	if err != nil {
		return nil, err
	}
	return productsToResponses(products), nil
}

// ── Update ───────────────────────────────────────────────────────────────────
// Accepts an arbitrary subset of mutable fields. Two hard rules shared with
// the import pipeline:
//   - a name change re-runs the case-insensitive duplicate check against all
//     OTHER products and fails instead of silently skipping;
//   - any stock write recomputes status in the same operation, and records an
//     inventory log row inside the same transaction.
// Validation happens before anything is written — a rejected update leaves
// the stored record untouched.

func (s *productService) Update(ctx context.Context, id uuid.UUID, actor string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		if _, err := s.repo.FindByNameInsensitive(ctx, *req.Name, &id); err == nil {
			return nil, ErrNameConflict
		}
		p.Name = *req.Name
	}
	if req.Stock.Present && (!req.Stock.Valid || req.Stock.Value < 0) {
		return nil, ErrInvalidStock
	}

	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.Image != nil {
		p.Image = req.Image
	}

	oldStock := p.Stock
	stockChanged := false
	if req.Stock.Present {
		p.Stock = req.Stock.Value
		p.Status = model.StatusForStock(p.Stock)
		stockChanged = p.Stock != oldStock
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, p); err != nil {
			return err
		}
		if stockChanged {
			return s.logs.CreateTx(tx, &model.InventoryLog{
				ProductID: p.ID,
				OldStock:  oldStock,
				NewStock:  p.Stock,
				ChangedBy: actor,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	invalidateCategories(ctx, s.rdb)
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	// Hard delete. History rows in inventory_logs stay behind on purpose.
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateCategories(ctx, s.rdb)
	return nil
}

func (s *productService) History(ctx context.Context, productID uuid.UUID) ([]dto.InventoryLogResponse, error) {
	logs, err := s.logs.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:        logs[i].ID.String(),
			ProductID: logs[i].ProductID.String(),
			OldStock:  logs[i].OldStock,
			NewStock:  logs[i].NewStock,
			ChangedBy: logs[i].ChangedBy,
			CreatedAt: logs[i].CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if b, err := json.Marshal(categories); err == nil {
			if err := s.rdb.Set(ctx, categoriesCacheKey, b, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("category cache store failed")
			}
		}
	}
	return categories, nil
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Unit:      p.Unit,
		Category:  p.Category,
		Brand:     p.Brand,
		Stock:     p.Stock,
		Status:    p.Status,
		Image:     p.Image,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func productsToResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out
}
