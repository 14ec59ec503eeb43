package service

import (
	"context"

	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/michelstore/storefront-service/internal/dto"
	"github.com/michelstore/storefront-service/internal/infrastructure/imagehost"
)

type CatalogService interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	GetKits(ctx context.Context) (data []domain.Kit, err error)
	AddKit(ctx context.Context, data dto.KitRequest) (kit domain.Kit, err error)
	UpdateKit(ctx context.Context, data dto.KitRequest) (kit domain.Kit, err error)
	DeleteKit(ctx context.Context, id string) (err error)

	UploadImage(ctx context.Context, fileName string, content []byte) (image imagehost.Image, err error)
}
