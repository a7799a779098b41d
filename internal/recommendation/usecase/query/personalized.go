package query

import (
	"context"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	historydomain "github.com/alibix/storefront/internal/history/domain"
	"github.com/alibix/storefront/internal/recommendation/domain"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultPersonalizedLimit = 8

// PersonalizedQuery asks for recommendations tailored to the session's
// interaction history
type PersonalizedQuery struct {
	SessionID string
	Limit     int
}

// PersonalizedHandler runs the full pipeline: history -> profile ->
// scoring -> accuracy simulation. Pipeline failures degrade to featured
// products; recommendations are a non-critical enhancement.
type PersonalizedHandler struct {
	catalog   catalogdomain.ProductRepository
	history   historydomain.HistoryRepository
	config    domain.Config
	simulator *domain.Simulator
}

// NewPersonalizedHandler creates a new personalized recommendations handler
func NewPersonalizedHandler(
	catalog catalogdomain.ProductRepository,
	history historydomain.HistoryRepository,
	config domain.Config,
	simulator *domain.Simulator,
) *PersonalizedHandler {
	return &PersonalizedHandler{catalog: catalog, history: history, config: config, simulator: simulator}
}

// Handle executes the personalized recommendations query
func (h *PersonalizedHandler) Handle(ctx context.Context, query PersonalizedQuery) ([]domain.ScoredProduct, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPersonalizedLimit
	}

	ranked, err := h.rank(ctx, query.SessionID)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Recommendation pipeline failed, falling back to featured products")
		return h.fallback(limit)
	}

	return h.simulator.Apply(ranked, limit), nil
}

func (h *PersonalizedHandler) rank(ctx context.Context, sessionID string) ([]domain.ScoredProduct, error) {
	views, err := h.history.Views(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	searches, err := h.history.Searches(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	products, err := h.catalog.FindAll()
	if err != nil {
		return nil, err
	}

	// Profile is recomputed per request, never cached
	profile := domain.AnalyzePreferences(views, searches)

	viewed := make(domain.ExcludeSet, len(views))
	for _, v := range views {
		viewed[v.ProductID] = struct{}{}
	}

	return domain.ScorePersonalized(products, profile, viewed, h.config), nil
}

func (h *PersonalizedHandler) fallback(limit int) ([]domain.ScoredProduct, error) {
	featured, err := h.catalog.FindFeatured()
	if err != nil {
		return nil, nil
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	out := make([]domain.ScoredProduct, 0, len(featured))
	for _, p := range featured {
		out = append(out, domain.ScoredProduct{Product: p})
	}
	return out, nil
}
