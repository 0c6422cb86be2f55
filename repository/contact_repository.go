package repository

import (
	"context"

	"cms-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const contactCollection = "contactmessage"

type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		collection: db.Collection(contactCollection),
	}
}

func (r *ContactRepository) Insert(ctx context.Context, msg models.ContactMessage) error {
	_, err := r.collection.InsertOne(ctx, msg)
	return err
}
