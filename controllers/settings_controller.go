package controllers

import (
	"net/http"

	"cms-backend/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	service   services.SettingsService
	validator *RequestValidator
}

func NewSettingsController(service services.SettingsService, validator *RequestValidator) *SettingsController {
	return &SettingsController{service: service, validator: validator}
}

// Get returns the site settings, seeding the defaults on first read.
func (ctrl *SettingsController) Get(c *gin.Context) {
	settings, err := ctrl.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Put overwrites the site settings and echoes the stored payload.
func (ctrl *SettingsController) Put(c *gin.Context) {
	payload, err := ctrl.validator.SiteSettings(c)
	if err != nil {
		respondError(c, err)
		return
	}

	settings, err := ctrl.service.Put(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
