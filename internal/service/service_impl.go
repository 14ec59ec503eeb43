package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/michelstore/storefront-service/config"
	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/michelstore/storefront-service/internal/dto"
	"github.com/michelstore/storefront-service/internal/infrastructure/imagehost"
	"github.com/michelstore/storefront-service/internal/repository"
	"github.com/michelstore/storefront-service/pkg/errs"
)

type CatalogServiceImpl struct {
	repo      repository.CatalogRepository
	imageHost imagehost.Client
	config    config.Config
}

func CreateCatalogService(repo repository.CatalogRepository, imageHost imagehost.Client, config config.Config) CatalogService {
	return &CatalogServiceImpl{repo: repo, imageHost: imageHost, config: config}
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	return s.repo.GetProducts(ctx)
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	kind := domain.ItemKind(data.Type)
	if kind == "" {
		kind = domain.ItemKindIndividual
	}

	product = domain.Product{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		ImageID:     data.ImageID,
		Type:        kind,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   time.Now().UnixMilli(),
	}

	productID, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID
	return product, nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return product, errs.ErrNotFound
	}

	kind := domain.ItemKind(data.Type)
	if kind == "" {
		kind = domain.ItemKindIndividual
	}

	err = s.repo.UpdateProduct(ctx, domain.Product{
		ID:          objectID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		ImageID:     data.ImageID,
		Type:        kind,
		IsFeatured:  data.IsFeatured,
	})
	if err != nil {
		return
	}

	return s.repo.GetProductByID(ctx, data.ID)
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	s.cleanupImage(ctx, product.ImageID)

	return s.repo.DeleteProduct(ctx, id)
}

func (s *CatalogServiceImpl) GetKits(ctx context.Context) (data []domain.Kit, err error) {
	return s.repo.GetKits(ctx)
}

func (s *CatalogServiceImpl) AddKit(ctx context.Context, data dto.KitRequest) (kit domain.Kit, err error) {
	kit = domain.Kit{
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		ImageID:     data.ImageID,
		ProductIDs:  data.ProductIDs,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   time.Now().UnixMilli(),
	}

	kitID, err := s.repo.AddKit(ctx, kit)
	if err != nil {
		return
	}

	kit.ID = kitID
	return kit, nil
}

func (s *CatalogServiceImpl) UpdateKit(ctx context.Context, data dto.KitRequest) (kit domain.Kit, err error) {
	objectID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return kit, errs.ErrNotFound
	}

	err = s.repo.UpdateKit(ctx, domain.Kit{
		ID:          objectID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		ImageID:     data.ImageID,
		ProductIDs:  data.ProductIDs,
		IsFeatured:  data.IsFeatured,
	})
	if err != nil {
		return
	}

	return s.repo.GetKitByID(ctx, data.ID)
}

func (s *CatalogServiceImpl) DeleteKit(ctx context.Context, id string) (err error) {
	kit, err := s.repo.GetKitByID(ctx, id)
	if err != nil {
		return
	}

	s.cleanupImage(ctx, kit.ImageID)

	return s.repo.DeleteKit(ctx, id)
}

func (s *CatalogServiceImpl) UploadImage(ctx context.Context, fileName string, content []byte) (image imagehost.Image, err error) {
	return s.imageHost.Upload(ctx, fileName, content)
}

// cleanupImage never fails the surrounding deletion; a hosting failure just
// leaves an orphaned remote image behind.
func (s *CatalogServiceImpl) cleanupImage(ctx context.Context, imageID string) {
	if imageID == "" {
		return
	}

	if err := s.imageHost.Delete(ctx, imageID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "cleanupImage").Str("image_id", imageID).Msg("image cleanup failed")
	}
}
