package services

import (
	"context"
	"testing"

	apperrors "cms-backend/errors"
	"cms-backend/models"
	"cms-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ---- mock repository ----

type mockProductRepo struct {
	calls int

	findAllStored []repository.StoredProduct
	findAllErr    error
	findByIDDoc   *models.ProductDocument
	findByIDErr   error
	insertID      primitive.ObjectID
	insertErr     error
	replaced      int64
	replaceErr    error
	deleted       int64
	deleteErr     error

	lastReplaceDoc models.ProductDocument
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]repository.StoredProduct, error) {
	m.calls++
	return m.findAllStored, m.findAllErr
}

func (m *mockProductRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.ProductDocument, error) {
	m.calls++
	return m.findByIDDoc, m.findByIDErr
}

func (m *mockProductRepo) Insert(_ context.Context, _ models.ProductDocument) (primitive.ObjectID, error) {
	m.calls++
	return m.insertID, m.insertErr
}

func (m *mockProductRepo) Replace(_ context.Context, _ primitive.ObjectID, doc models.ProductDocument) (int64, error) {
	m.calls++
	m.lastReplaceDoc = doc
	return m.replaced, m.replaceErr
}

func (m *mockProductRepo) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	m.calls++
	return m.deleted, m.deleteErr
}

func validInput() models.ProductInput {
	price := 499.99
	return models.ProductInput{Name: "Fridge X", Brand: "Acme", Price: &price}
}

func TestCreateProductAssignsEncodedID(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockProductRepo{insertID: id}
	svc := NewProductService(repo)

	product, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, id.Hex(), product.ID)
	assert.Equal(t, "Fridge X", product.Name)
	assert.Equal(t, 499.99, product.Price)
	assert.True(t, product.InStock)
	assert.Empty(t, product.Features)
	assert.NotNil(t, product.Features)
}

func TestUpdateProductMalformedIDNeverReachesStore(t *testing.T) {
	repo := &mockProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "not-a-hex-id", validInput())
	require.Error(t, err)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrInvalidProductID.Code, appErr.Code)
	assert.Zero(t, repo.calls, "malformed id must be rejected before any store call")
}

func TestDeleteProductMalformedIDNeverReachesStore(t *testing.T) {
	repo := &mockProductRepo{}
	svc := NewProductService(repo)

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrInvalidProductID.Code, appErr.Code)
	assert.Zero(t, repo.calls)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := &mockProductRepo{replaced: 0}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "000000000000000000000000", validInput())
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestUpdateProductReturnsStoredState(t *testing.T) {
	doc := validInput().Document()
	repo := &mockProductRepo{replaced: 1, findByIDDoc: &doc}
	svc := NewProductService(repo)

	product, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", validInput())
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", product.ID)
	assert.Equal(t, doc.Name, product.Name)
}

func TestUpdateProductRereadRace(t *testing.T) {
	repo := &mockProductRepo{replaced: 1, findByIDErr: mongo.ErrNoDocuments}
	svc := NewProductService(repo)

	_, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", validInput())
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	repo := &mockProductRepo{deleted: 0}
	svc := NewProductService(repo)

	err := svc.Delete(context.Background(), "000000000000000000000000")
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := &mockProductRepo{deleted: 1}
	svc := NewProductService(repo)

	err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
	assert.NoError(t, err)
}

func TestListProductsEmptyStore(t *testing.T) {
	repo := &mockProductRepo{findAllStored: []repository.StoredProduct{}}
	svc := NewProductService(repo)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProductsRejectsCorruptDocument(t *testing.T) {
	repo := &mockProductRepo{findAllStored: []repository.StoredProduct{
		{
			ID:  primitive.NewObjectID(),
			Doc: models.ProductDocument{Name: "Broken", Brand: "Acme", Price: -5},
		},
	}}
	svc := NewProductService(repo)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative price")
}
