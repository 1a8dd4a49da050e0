package ui

import (
	"github.com/gin-gonic/gin"

	"cropsense/app"
	"cropsense/domain/knowledge"
)

// Server hosts the crop recommendation HTTP API.
type Server struct {
	router   *gin.Engine
	service  *app.RecommendationService
	registry *knowledge.Registry
	maxRows  int
}

// NewServer creates the web server and registers its routes.
func NewServer(service *app.RecommendationService, registry *knowledge.Registry, maxBatchRows int) *Server {
	s := &Server{
		router:   gin.Default(),
		service:  service,
		registry: registry,
		maxRows:  maxBatchRows,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.GET("/crops", s.handleListCrops)
	s.router.GET("/crops/:id", s.handleGetCrop)
	s.router.POST("/predict", s.handlePredict)
	s.router.POST("/batch_predict", s.handleBatchPredict)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
