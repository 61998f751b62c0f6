package menuRepo

import (
	"context"
	"fmt"
	"time"

	"goldenfish/database"
	"goldenfish/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMenuRepo implements MenuRepository using MongoDB.
type MongoMenuRepo struct {
	categories *mongo.Collection
	products   *mongo.Collection
	optionsCol *mongo.Collection
}

// NewMongoMenuRepo creates a new MenuRepository backed by MongoDB.
func NewMongoMenuRepo() MenuRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoMenuRepo{
		categories: db.Collection("categories"),
		products:   db.Collection("products"),
		optionsCol: db.Collection("product_options"),
	}
}

func (r *MongoMenuRepo) GetCategories() ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	for cursor.Next(ctx) {
		var c models.Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *MongoMenuRepo) GetProducts() ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{"available": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *MongoMenuRepo) GetOptions() ([]models.ProductOption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.optionsCol.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.ProductOption
	for cursor.Next(ctx) {
		var o models.ProductOption
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode product option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, nil
}

func (r *MongoMenuRepo) UpsertProduct(product *models.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": product.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.products.ReplaceOne(ctx, filter, product, opts); err != nil {
		return fmt.Errorf("failed to upsert product %d: %w", product.ID, err)
	}
	return nil
}

func (r *MongoMenuRepo) SetProductAvailability(productID int, available bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": productID}
	update := bson.M{"$set": bson.M{"available": available}}
	res, err := r.products.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for product %d: %w", productID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %d not found", productID)
	}
	return nil
}
