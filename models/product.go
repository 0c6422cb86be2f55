package models

import (
	"fmt"

	apperrors "cms-backend/errors"
)

// ProductInput is the wire shape accepted on create and update. Update has
// full-replace semantics, so both operations share one contract. Optional
// fields are pointers so an absent field stays distinct from an empty one.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
	Features    []string `json:"features"`
}

// Product is the wire shape returned to clients: the stored fields plus the
// hex-encoded document id.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	InStock     bool     `json:"in_stock"`
	Features    []string `json:"features"`
}

// ProductDocument is the stored shape. It carries no id field: MongoDB owns
// _id assignment on insert and the repository extracts it separately.
type ProductDocument struct {
	Name        string   `bson:"name"`
	Brand       string   `bson:"brand"`
	Description *string  `bson:"description"`
	Price       float64  `bson:"price"`
	ImageURL    *string  `bson:"image_url"`
	Category    *string  `bson:"category"`
	InStock     bool     `bson:"in_stock"`
	Features    []string `bson:"features"`
}

// Document maps a validated input onto the stored shape, applying defaults:
// in_stock true when omitted, features an empty list when omitted.
func (in ProductInput) Document() ProductDocument {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	features := in.Features
	if features == nil {
		features = []string{}
	}
	var price float64
	if in.Price != nil {
		price = *in.Price
	}
	return ProductDocument{
		Name:        in.Name,
		Brand:       in.Brand,
		Description: in.Description,
		Price:       price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		InStock:     inStock,
		Features:    features,
	}
}

// ProductFromDocument maps a stored document back onto the wire shape,
// attaching the encoded id. A stored field violating the output contract
// signals corrupt data upstream and is rejected rather than coerced.
func ProductFromDocument(id string, doc ProductDocument) (Product, error) {
	if doc.Price < 0 {
		return Product{}, apperrors.Wrap(apperrors.ErrValidation,
			fmt.Errorf("stored product %s has negative price %v", id, doc.Price))
	}
	features := doc.Features
	if features == nil {
		features = []string{}
	}
	return Product{
		ID:          id,
		Name:        doc.Name,
		Brand:       doc.Brand,
		Description: doc.Description,
		Price:       doc.Price,
		ImageURL:    doc.ImageURL,
		Category:    doc.Category,
		InStock:     doc.InStock,
		Features:    features,
	}, nil
}
