package settingsRepo

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

// settingsDocID keys the single settings document.
const settingsDocID = "restaurant"

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("settings")
	return &MongoSettingsRepo{coll: coll}
}

func (r *MongoSettingsRepo) Get() (*models.RestaurantConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		ID     string                  `bson:"_id"`
		Config models.RestaurantConfig `bson:"config"`
	}
	filter := bson.M{"_id": settingsDocID}
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant settings: %w", err)
	}
	return &doc.Config, nil
}

func (r *MongoSettingsRepo) Save(cfg *models.RestaurantConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := bson.M{"_id": settingsDocID, "config": cfg, "updatedAt": time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save restaurant settings: %w", err)
	}
	return nil
}

func (r *MongoSettingsRepo) SetClosure(closure models.TemporaryClosure) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"config.closure": closure, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": settingsDocID}, update)
	if err != nil {
		return fmt.Errorf("failed to update closure: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("restaurant settings not found")
	}
	return nil
}

func (r *MongoSettingsRepo) SetPromotionActive(ruleID string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": settingsDocID, "config.promotions.id": ruleID}
	update := bson.M{"$set": bson.M{"config.promotions.$.active": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update promotion %s: %w", ruleID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("promotion %s not found", ruleID)
	}
	return nil
}
