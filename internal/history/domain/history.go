package domain

import "context"

// Bounds on the persisted interaction histories
const (
	MaxViewedProducts = 20
	MaxSearchEntries  = 50
)

// ViewRecord is one entry in the recently-viewed list. It carries a
// snapshot of the product attributes the preference analyzer needs so
// that reading history never requires catalog lookups.
type ViewRecord struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand,omitempty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	ViewedAt  int64   `json:"viewed_at"` // unix milliseconds
	ViewCount int     `json:"view_count"`
}

// Valid reports whether a persisted entry still has the minimum fields.
// Entries failing this check are treated as corrupted and dropped.
func (v ViewRecord) Valid() bool {
	return v.ProductID != 0 && v.Name != "" && v.Image != ""
}

// SearchRecord is one entry in the search history
type SearchRecord struct {
	Query       string `json:"query"` // case-normalized
	Timestamp   int64  `json:"timestamp"`
	ResultCount int    `json:"result_count"`
	Frequency   int    `json:"frequency"`
}

// HistoryRepository persists the bounded interaction histories, keyed
// per session. Lists are stored and returned most-recent-first.
type HistoryRepository interface {
	Views(ctx context.Context, sessionID string) ([]ViewRecord, error)
	SaveViews(ctx context.Context, sessionID string, views []ViewRecord) error
	Searches(ctx context.Context, sessionID string) ([]SearchRecord, error)
	SaveSearches(ctx context.Context, sessionID string, searches []SearchRecord) error
}

// MirrorEntry is the compact per-product form written to the sync mirror
type MirrorEntry struct {
	ProductID uint  `json:"product_id"`
	ViewedAt  int64 `json:"viewed_at"`
	ViewCount int   `json:"view_count"`
}

// MirrorSnapshot is the payload persisted by the background mirror sync
type MirrorSnapshot struct {
	UserID   string        `json:"user_id"`
	Views    []MirrorEntry `json:"views"`
	SyncedAt int64         `json:"synced_at"`
}

// Syncer receives the updated view list after each mutation. The send
// must never block or fail the caller's path.
type Syncer interface {
	Enqueue(sessionID string, views []ViewRecord)
}
