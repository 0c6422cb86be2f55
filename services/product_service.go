package services

import (
	"context"
	"errors"

	apperrors "cms-backend/errors"
	"cms-backend/models"
	"cms-backend/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProductService exposes the catalog CRUD operations. Identifiers cross
// this boundary in their external hex form.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, input models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	stored, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(stored))
	for _, sp := range stored {
		product, err := models.ProductFromDocument(encodeProductID(sp.ID), sp.Doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (s *productService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	doc := input.Document()
	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	product, err := models.ProductFromDocument(encodeProductID(id), doc)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update fully replaces the mapped fields of the matched document, then
// re-reads it so the response reflects the stored state.
func (s *productService) Update(ctx context.Context, id string, input models.ProductInput) (*models.Product, error) {
	oid, err := decodeProductID(id)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.Replace(ctx, oid, input.Document())
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, apperrors.ErrProductNotFound
	}

	doc, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		// A concurrent delete can race the re-read.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	product, err := models.ProductFromDocument(id, *doc)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	oid, err := decodeProductID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}
