package dto

import (
	"encoding/json"
	"math"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest carries a new product. Stock shares the OptionalInt
// treatment with updates so a bad value gets the stock contract message
// instead of a generic binding error; absent stock means 0.
type CreateProductRequest struct {
	Name     string      `json:"name"     validate:"required,min=1,max=120"`
	Unit     string      `json:"unit"`
	Category string      `json:"category"`
	Brand    string      `json:"brand"`
	Stock    OptionalInt `json:"stock"`
	Image    *string     `json:"image"`
}

// UpdateProductRequest carries an arbitrary subset of mutable fields.
// Every slot is optional; nil (or an unset OptionalInt) means "leave as is".
type UpdateProductRequest struct {
	Name     *string     `json:"name"     validate:"omitempty,min=1,max=120"`
	Unit     *string     `json:"unit"`
	Category *string     `json:"category"`
	Brand    *string     `json:"brand"`
	Stock    OptionalInt `json:"stock"`
	Image    *string     `json:"image"`
}

// OptionalInt distinguishes "absent" from "present but not a whole number",
// so the update path can reject bad stock values with a specific message
// instead of a generic JSON binding error. JSON null counts as absent.
type OptionalInt struct {
	Present bool
	Valid   bool
	Value   int
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	o.Present = true
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || f != math.Trunc(f) {
		return nil
	}
	o.Value = int(f)
	o.Valid = true
	return nil
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter narrows the listing. Category "all" (or empty) means no
// category filter; Name is a case-insensitive substring match.
type ProductFilter struct {
	Category string `form:"category"`
	Name     string `form:"name"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Stock     int     `json:"stock"`
	Status    string  `json:"status"`
	Image     *string `json:"image"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type InventoryLogResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	OldStock  int    `json:"old_stock"`
	NewStock  int    `json:"new_stock"`
	ChangedBy string `json:"changed_by"`
	CreatedAt string `json:"created_at"`
}
