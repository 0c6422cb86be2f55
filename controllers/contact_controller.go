package controllers

import (
	"net/http"

	"cms-backend/metrics"
	"cms-backend/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	service   services.ContactService
	validator *RequestValidator
}

func NewContactController(service services.ContactService, validator *RequestValidator) *ContactController {
	return &ContactController{service: service, validator: validator}
}

// Submit stores a contact message and reports whether the notification
// email went out. A relay failure never fails the request; a storage
// failure always does.
func (ctrl *ContactController) Submit(c *gin.Context) {
	msg, err := ctrl.validator.ContactMessage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := ctrl.service.Submit(c.Request.Context(), msg)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.ContactMessagesStored.Inc()
	if result.EmailSent {
		metrics.ContactEmailsSent.Inc()
	}
	c.JSON(http.StatusOK, result)
}
