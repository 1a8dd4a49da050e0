package ui

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cropsense/adapters/tabular"
	"cropsense/app"
	"cropsense/domain/agronomy"
	"cropsense/internal/profiling"
)

func (s *Server) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Crop Recommendation API")
}

func (s *Server) handleListCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"crops": s.registry.All(),
		"count": s.registry.Len(),
	})
}

func (s *Server) handleGetCrop(c *gin.Context) {
	crop, ok := s.registry.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crop not found"})
		return
	}
	c.JSON(http.StatusOK, crop)
}

// handlePredict serves single-record recommendations. Validation failures
// are client errors carrying the complete missing-field list; model
// failures are opaque server-side errors.
func (s *Server) handlePredict(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON"})
		return
	}

	response, err := s.service.Recommend(c.Request.Context(), raw)
	if err != nil {
		var vErr *app.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          "Missing required fields",
				"missing_fields": vErr.Fields,
			})
			return
		}
		log.Printf("[API] Prediction failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// handleBatchPredict serves CSV/XLSX uploads. The batch only fails
// outright when the file cannot be parsed into rows or the header lacks
// required columns; row-level problems come back as per-row error
// markers.
func (s *Server) handleBatchPredict(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file part in the request. Please upload a CSV with key 'file'.",
		})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file."})
		return
	}
	defer file.Close()

	table, err := tabular.NewReader(fileHeader.Filename).Read(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if missing := table.MissingColumns(agronomy.FeatureColumns()); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Missing required columns in CSV.",
			"missing_columns": missing,
		})
		return
	}

	if s.maxRows > 0 && len(table.Rows) > s.maxRows {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Batch exceeds the maximum row count.",
			"limit": s.maxRows,
		})
		return
	}

	records := table.Records()
	results := s.service.RecommendBatch(c.Request.Context(), records)

	c.JSON(http.StatusOK, gin.H{
		"batch_id": uuid.NewString(),
		"count":    len(results),
		"results":  results,
		"summary":  profiling.Summarize(records),
	})
}
