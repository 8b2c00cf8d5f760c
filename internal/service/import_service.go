package service

import (
	"context"
	"strconv"

	"github.com/Swati-d16/Product-Inventory/internal/csvio"
	"github.com/Swati-d16/Product-Inventory/internal/dto"
	"github.com/Swati-d16/Product-Inventory/internal/model"
	"github.com/Swati-d16/Product-Inventory/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ImportService handles CSV bulk import and export.
type ImportService interface {
	Import(ctx context.Context, raw string) (*dto.ImportResult, error)
	Export(ctx context.Context) (string, error)
}

type importService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewImportService(repo repository.ProductRepository, rdb *redis.Client) ImportService {
	return &importService{repo: repo, rdb: rdb}
}

// ── Import ───────────────────────────────────────────────────────────────────
// One linear pass over the parsed rows, in file order. Per row:
//   1. normalize — a missing name skips the row outright;
//   2. case-insensitive duplicate check — a match is reported and skipped;
//   3. insert — a store failure drops only this row.
// No row outcome aborts the batch, and there is no rollback: rows inserted
// before a later failure stay committed. The duplicate check and the insert
// are two separate statements; the LOWER(name) unique index (see
// infra.NewDatabase) closes the race between them, with the losing row
// surfacing as an insert failure and counting as skipped.

func (s *importService) Import(ctx context.Context, raw string) (*dto.ImportResult, error) {
	doc := csvio.Parse(raw)

	result := &dto.ImportResult{Duplicates: make([]dto.DuplicateEntry, 0)}
	for _, row := range doc.Rows {
		candidate, ok := normalizeRow(row)
		if !ok {
			result.Skipped++
			continue
		}

		if existing, err := s.repo.FindByNameInsensitive(ctx, candidate.Name, nil); err == nil {
			result.Duplicates = append(result.Duplicates, dto.DuplicateEntry{
				Name:       candidate.Name,
				ExistingID: existing.ID.String(),
			})
			result.Skipped++
			continue
		}

		if err := s.repo.Create(ctx, candidate); err != nil {
			log.Warn().Err(err).Str("name", candidate.Name).Msg("import row insert failed")
			result.Skipped++
			continue
		}
		result.Added++
	}

	if result.Added > 0 {
		invalidateCategories(ctx, s.rdb)
	}
	return result, nil
}

// normalizeRow turns a raw cell map into a candidate product. ok=false means
// the row is skipped (empty name) with no store interaction and no duplicate
// entry. The status cell is ignored even when present: status is derived from
// the parsed stock, here and on every other stock-writing path.
func normalizeRow(row map[string]string) (*model.Product, bool) {
	name := row["name"]
	if name == "" {
		return nil, false
	}

	stock, err := strconv.Atoi(row["stock"])
	if err != nil {
		stock = 0
	}

	unit := row["unit"]
	if unit == "" {
		unit = "pcs"
	}
	category := row["category"]
	if category == "" {
		category = "Uncategorized"
	}
	brand := row["brand"]
	if brand == "" {
		brand = "Unknown"
	}
	var image *string
	if v := row["image"]; v != "" {
		image = &v
	}

	return &model.Product{
		Name:     name,
		Unit:     unit,
		Category: category,
		Brand:    brand,
		Stock:    stock,
		Status:   model.StatusForStock(stock),
		Image:    image,
	}, true
}

// ── Export ───────────────────────────────────────────────────────────────────

// Export renders every product, ordered by name ascending, in the same column
// layout the importer accepts.
func (s *importService) Export(ctx context.Context) (string, error) {
	products, err := s.repo.List(ctx, dto.ProductFilter{})
	if err != nil {
		return "", err
	}

	records := make([]csvio.Record, 0, len(products))
	for i := range products {
		image := ""
		if products[i].Image != nil {
			image = *products[i].Image
		}
		records = append(records, csvio.Record{
			Name:     products[i].Name,
			Unit:     products[i].Unit,
			Category: products[i].Category,
			Brand:    products[i].Brand,
			Stock:    products[i].Stock,
			Status:   products[i].Status,
			Image:    image,
		})
	}
	return csvio.Serialize(records), nil
}
