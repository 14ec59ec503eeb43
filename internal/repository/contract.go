package repository

import (
	"context"

	"github.com/michelstore/storefront-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	AddKit(ctx context.Context, data domain.Kit) (id primitive.ObjectID, err error)
	GetKits(ctx context.Context) (data []domain.Kit, err error)
	GetKitByID(ctx context.Context, id string) (kit domain.Kit, err error)
	UpdateKit(ctx context.Context, data domain.Kit) (err error)
	DeleteKit(ctx context.Context, id string) (err error)
}
