package controllers

import (
	apperrors "cms-backend/errors"
	"cms-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequestValidator binds and validates request bodies against their shape
// contracts. Validation runs at the boundary: nothing past this layer sees
// a payload that violates its contract.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ProductInput parses the create/update payload.
func (rv *RequestValidator) ProductInput(c *gin.Context) (models.ProductInput, error) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return input, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if err := rv.validate.Struct(&input); err != nil {
		return input, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return input, nil
}

// SiteSettings parses the settings payload. Binding starts from the declared
// defaults, so omitted fields keep them while supplied values win.
func (rv *RequestValidator) SiteSettings(c *gin.Context) (models.SiteSettings, error) {
	settings := models.DefaultSiteSettings()
	if err := c.ShouldBindJSON(&settings); err != nil {
		return settings, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if err := rv.validate.Struct(&settings); err != nil {
		return settings, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return settings, nil
}

// ContactMessage parses an inbound contact submission.
func (rv *RequestValidator) ContactMessage(c *gin.Context) (models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		return msg, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if err := rv.validate.Struct(&msg); err != nil {
		return msg, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return msg, nil
}
