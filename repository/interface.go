package repository

import (
	"context"

	"cms-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredProduct pairs a product document with the id MongoDB assigned it.
type StoredProduct struct {
	ID  primitive.ObjectID     `bson:"_id"`
	Doc models.ProductDocument `bson:",inline"`
}

// StoredSettings pairs the settings document with its id, which is needed
// to target the in-place update.
type StoredSettings struct {
	ID  primitive.ObjectID  `bson:"_id"`
	Doc models.SiteSettings `bson:",inline"`
}

// ProductRepo defines the store operations used by the product service.
// Identifier decoding happens above this layer: a malformed external id
// never reaches the store.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]StoredProduct, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ProductDocument, error)
	Insert(ctx context.Context, doc models.ProductDocument) (primitive.ObjectID, error)
	// Replace overwrites every mapped field of the matched document and
	// reports how many documents matched.
	Replace(ctx context.Context, id primitive.ObjectID, doc models.ProductDocument) (int64, error)
	// Delete removes the matched document and reports how many were deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// SettingsRepo defines the store operations for the settings singleton.
type SettingsRepo interface {
	FindFirst(ctx context.Context) (*StoredSettings, error)
	Insert(ctx context.Context, settings models.SiteSettings) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, settings models.SiteSettings) error
}

// ContactRepo stores inbound contact messages. Write-only by design.
type ContactRepo interface {
	Insert(ctx context.Context, msg models.ContactMessage) error
}
