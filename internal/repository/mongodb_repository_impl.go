package repository

import (
	"context"

	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/michelstore/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	productsCollection = "products"
	kitsCollection     = "kits"
)

type MongoDBCatalogRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) CatalogRepository {
	return &MongoDBCatalogRepositoryImpl{db: db}
}

func (r *MongoDBCatalogRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCatalogRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	data = []domain.Product{}

	cursor, err := r.db.Collection(productsCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCatalogRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productsCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}
	return product, nil
}

func (r *MongoDBCatalogRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "image_id", Value: data.ImageID},
		{Key: "type", Value: data.Type},
		{Key: "is_featured", Value: data.IsFeatured},
	}}}

	result, err := r.db.Collection(productsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCatalogRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection(productsCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBCatalogRepositoryImpl) AddKit(ctx context.Context, data domain.Kit) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(kitsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddKit").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCatalogRepositoryImpl) GetKits(ctx context.Context) (data []domain.Kit, err error) {
	data = []domain.Kit{}

	cursor, err := r.db.Collection(kitsCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetKits").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetKits").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCatalogRepositoryImpl) GetKitByID(ctx context.Context, id string) (kit domain.Kit, err error) {
	kitID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetKitByID").Msg("")
		return kit, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: kitID}}

	err = r.db.Collection(kitsCollection).FindOne(ctx, filter).Decode(&kit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetKitByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return kit, errs.ErrNotFound
		}

		return kit, err
	}
	return kit, nil
}

func (r *MongoDBCatalogRepositoryImpl) UpdateKit(ctx context.Context, data domain.Kit) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "image_url", Value: data.ImageURL},
		{Key: "image_id", Value: data.ImageID},
		{Key: "product_ids", Value: data.ProductIDs},
		{Key: "is_featured", Value: data.IsFeatured},
	}}}

	result, err := r.db.Collection(kitsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateKit").Msg("Failed to update kit")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCatalogRepositoryImpl) DeleteKit(ctx context.Context, id string) (err error) {
	kitID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteKit").Msg("")
		return errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: kitID}}

	result, err := r.db.Collection(kitsCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteKit").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}
