package repository

import (
	"context"

	"cms-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const settingsCollection = "sitesettings"

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection(settingsCollection),
	}
}

// FindFirst returns the sole settings document, or mongo.ErrNoDocuments
// when none has been materialized yet.
func (r *SettingsRepository) FindFirst(ctx context.Context) (*StoredSettings, error) {
	var stored StoredSettings
	if err := r.collection.FindOne(ctx, bson.M{}).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *SettingsRepository) Insert(ctx context.Context, settings models.SiteSettings) error {
	_, err := r.collection.InsertOne(ctx, settings)
	return err
}

func (r *SettingsRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, settings models.SiteSettings) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": settings})
	return err
}
