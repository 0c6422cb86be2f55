package controllers

import (
	"context"
	"net/http"
	"time"

	"cms-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemController serves the liveness, diagnostic and introspection
// endpoints. None of them may fail the request: store trouble is reported
// in the payload instead.
type SystemController struct {
	db             *mongo.Database // nil when the store connection failed
	databaseURLSet bool
	databaseName   string
}

func NewSystemController(db *mongo.Database, databaseURLSet bool, databaseName string) *SystemController {
	return &SystemController{
		db:             db,
		databaseURLSet: databaseURLSet,
		databaseName:   databaseName,
	}
}

// Root is the liveness message.
func (ctrl *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "White Goods CMS API running"})
}

// Health is the container health probe.
func (ctrl *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Schema exposes the shape descriptors for the CMS viewer. No store access.
func (ctrl *SystemController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaDescriptors())
}

// Test reports store connectivity. It answers 200 even when the store is
// down or erroring, summarizing the failure as text.
func (ctrl *SystemController) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if ctrl.db == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	if ctrl.databaseURLSet {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = ctrl.databaseName

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	collections, err := ctrl.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, response)
		return
	}

	response["collections"] = collections
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"
	c.JSON(http.StatusOK, response)
}

// truncate cuts on rune boundaries so multi-byte error text never ends in
// a mangled character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
