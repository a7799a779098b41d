//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/alibix/storefront/internal/catalog/delivery/http"
	"github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/internal/catalog/usecase/command"
	"github.com/alibix/storefront/internal/catalog/usecase/query"
)

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.ProductRepository) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo)
}

func ProvideUpdateProductHandler(repo domain.ProductRepository) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo)
}

func ProvideDeleteProductHandler(repo domain.ProductRepository) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(repo)
}

func ProvideUpdateStockHandler(repo domain.ProductRepository) *command.UpdateStockHandler {
	return command.NewUpdateStockHandler(repo)
}

func ProvideApplyDiscountHandler(repo domain.ProductRepository) *command.ApplyDiscountHandler {
	return command.NewApplyDiscountHandler(repo)
}

func ProvideRemoveDiscountHandler(repo domain.ProductRepository) *command.RemoveDiscountHandler {
	return command.NewRemoveDiscountHandler(repo)
}

func ProvideSaveCategoryHandler(repo domain.CategoryRepository) *command.SaveCategoryHandler {
	return command.NewSaveCategoryHandler(repo)
}

func ProvideDeleteCategoryHandler(repo domain.CategoryRepository) *command.DeleteCategoryHandler {
	return command.NewDeleteCategoryHandler(repo)
}

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideSearchProductsHandler(repo domain.ProductRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

func ProvideGetRelatedHandler(repo domain.ProductRepository) *query.GetRelatedHandler {
	return query.NewGetRelatedHandler(repo)
}

func ProvideInventoryReportHandler(repo domain.ProductRepository) *query.InventoryReportHandler {
	return query.NewInventoryReportHandler(repo)
}

func ProvideListCategoriesHandler(repo domain.CategoryRepository) *query.ListCategoriesHandler {
	return query.NewListCategoriesHandler(repo)
}

func ProvideGetCategoryHandler(repo domain.CategoryRepository) *query.GetCategoryHandler {
	return query.NewGetCategoryHandler(repo)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
	ProvideUpdateStockHandler,
	ProvideApplyDiscountHandler,
	ProvideRemoveDiscountHandler,
	ProvideSaveCategoryHandler,
	ProvideDeleteCategoryHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProductHandler,
	ProvideListProductsHandler,
	ProvideSearchProductsHandler,
	ProvideGetRelatedHandler,
	ProvideInventoryReportHandler,
	ProvideListCategoriesHandler,
	ProvideGetCategoryHandler,
)

var AllHandlersSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeCatalogHandler initializes the catalog HTTP handler with all dependencies
func InitializeCatalogHandler(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	admin http.Middleware,
) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
