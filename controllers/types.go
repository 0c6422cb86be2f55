package controllers

import (
	"errors"
	"net/http"

	apperrors "cms-backend/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps an application error onto its HTTP response. Anything
// outside the taxonomy is a 500 and gets logged with its cause; the taxonomy
// errors are the caller's fault and logged by the request logger already.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, appErr)
		return
	}

	zap.L().Error("Unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apperrors.ErrInternalServer)
}

// DatabaseUnavailable answers data routes when the store connection failed
// at startup. The process keeps serving its diagnostic endpoints instead of
// crashing.
func DatabaseUnavailable(c *gin.Context) {
	err := apperrors.ErrDatabaseUnavailable
	c.JSON(err.Code, err)
}
