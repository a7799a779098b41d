package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/alibix/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedProductRepository wraps a ProductRepository with tracing spans
// on the lookups the recommendation pipeline depends on
type TracedProductRepository struct {
	domain.ProductRepository
}

// NewTracedProductRepository creates a repository decorated with tracing
func NewTracedProductRepository(inner domain.ProductRepository) *TracedProductRepository {
	return &TracedProductRepository{ProductRepository: inner}
}

// FindByIDWithContext resolves a product inside a span
func (r *TracedProductRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.category", product.Category),
	)
	return product, nil
}

// FindAllWithContext lists the catalog inside a span
func (r *TracedProductRepository) FindAllWithContext(ctx context.Context) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	products, err := r.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}
