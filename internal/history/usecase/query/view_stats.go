package query

import (
	"context"
	"sort"
	"time"

	"github.com/alibix/storefront/internal/history/domain"
)

// CategoryCount pairs a category with its view-count weighted frequency
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ViewedProduct summarizes one product in the most-viewed ranking
type ViewedProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	ViewCount int    `json:"view_count"`
}

// ViewStats summarizes browsing behavior for the admin dashboard
type ViewStats struct {
	TotalViewed         int             `json:"total_viewed"`
	TotalViewCount      int             `json:"total_view_count"`
	Last24Hours         int             `json:"last_24_hours"`
	LastWeek            int             `json:"last_week"`
	CategoryPreferences []CategoryCount `json:"category_preferences"`
	MostViewedProducts  []ViewedProduct `json:"most_viewed_products"`
}

// ViewStatsHandler computes aggregate view statistics
type ViewStatsHandler struct {
	repo domain.HistoryRepository
	now  func() time.Time
}

// NewViewStatsHandler creates a new view stats handler
func NewViewStatsHandler(repo domain.HistoryRepository) *ViewStatsHandler {
	return &ViewStatsHandler{repo: repo, now: time.Now}
}

// Handle executes the view stats query for one session
func (h *ViewStatsHandler) Handle(ctx context.Context, sessionID string) (*ViewStats, error) {
	views, err := h.repo.Views(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stats := &ViewStats{TotalViewed: len(views)}

	now := h.now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	week := 7 * day

	byCategory := make(map[string]int)
	for _, v := range views {
		stats.TotalViewCount += v.ViewCount
		if now-v.ViewedAt < day {
			stats.Last24Hours++
		}
		if now-v.ViewedAt < week {
			stats.LastWeek++
		}
		byCategory[v.Category] += v.ViewCount
	}

	for category, count := range byCategory {
		stats.CategoryPreferences = append(stats.CategoryPreferences, CategoryCount{Category: category, Count: count})
	}
	sort.SliceStable(stats.CategoryPreferences, func(i, j int) bool {
		a, b := stats.CategoryPreferences[i], stats.CategoryPreferences[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	if len(stats.CategoryPreferences) > 5 {
		stats.CategoryPreferences = stats.CategoryPreferences[:5]
	}

	ranked := make([]domain.ViewRecord, len(views))
	copy(ranked, views)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ViewCount > ranked[j].ViewCount })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	for _, v := range ranked {
		stats.MostViewedProducts = append(stats.MostViewedProducts, ViewedProduct{
			ProductID: v.ProductID,
			Name:      v.Name,
			ViewCount: v.ViewCount,
		})
	}

	return stats, nil
}
