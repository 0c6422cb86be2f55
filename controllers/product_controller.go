package controllers

import (
	"net/http"

	"cms-backend/metrics"
	"cms-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	service   services.ProductService
	validator *RequestValidator
}

func NewProductController(service services.ProductService, validator *RequestValidator) *ProductController {
	return &ProductController{service: service, validator: validator}
}

// List returns every catalog entry in store-native order.
func (ctrl *ProductController) List(c *gin.Context) {
	products, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create inserts a new catalog entry and returns it with its assigned id.
func (ctrl *ProductController) Create(c *gin.Context) {
	input, err := ctrl.validator.ProductInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := ctrl.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.ProductsCreated.Inc()
	zap.L().Info("Product created", zap.String("id", product.ID), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, product)
}

// Update fully replaces the fields of an existing catalog entry.
func (ctrl *ProductController) Update(c *gin.Context) {
	input, err := ctrl.validator.ProductInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete removes a catalog entry.
func (ctrl *ProductController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	metrics.ProductsDeleted.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
