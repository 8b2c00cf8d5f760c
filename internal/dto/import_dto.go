package dto

// DuplicateEntry reports one import row rejected because its name already
// exists (case-insensitive). ExistingID is the id of the persisted product.
type DuplicateEntry struct {
	Name       string `json:"name"`
	ExistingID string `json:"existingId"`
}

// ImportResult summarizes one CSV import batch. Added + Skipped always equals
// the number of non-blank data rows; Duplicates follows input row order.
type ImportResult struct {
	Added      int              `json:"added"`
	Skipped    int              `json:"skipped"`
	Duplicates []DuplicateEntry `json:"duplicates"`
}
