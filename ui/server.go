package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rushd/app"
	"rushd/internal"
	"rushd/internal/errors"
	"rushd/ports"
)

// Server is the web surface of the platform: assessment submission,
// recommendation browsing, journal CRUD and analytics. All computation
// lives in the domain engines; handlers only translate HTTP.
type Server struct {
	router          *gin.Engine
	users           ports.UserRepository
	recommendations *app.RecommendationService
	analytics       *app.AnalyticsService
	logger          *internal.Logger
}

// NewServer creates the web server and registers its routes
func NewServer(
	users ports.UserRepository,
	recommendations *app.RecommendationService,
	analytics *app.AnalyticsService,
	logger *internal.Logger,
) *Server {
	s := &Server{
		router:          gin.Default(),
		users:           users,
		recommendations: recommendations,
		analytics:       analytics,
		logger:          logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	api.GET("/health", s.handleHealth)
	api.GET("/questions", s.handleListQuestions)
	api.POST("/assessment", s.handleSubmitAssessment)

	api.GET("/recommendations", s.handleListRecommendations)
	api.GET("/careers/:id", s.handleGetCareer)
	api.POST("/careers/:id/save", s.handleSaveCareer)
	api.DELETE("/careers/:id/save", s.handleUnsaveCareer)

	api.GET("/journal/entries", s.handleListEntries)
	api.POST("/journal/entries", s.handleCreateEntry)
	api.PUT("/journal/entries/:id", s.handleUpdateEntry)
	api.DELETE("/journal/entries/:id", s.handleDeleteEntry)

	api.GET("/analytics", s.handleAnalytics)
	api.GET("/analytics/overview", s.handleAnalyticsOverview)
}

// Run starts the server on the given port
func (s *Server) Run(port string) error {
	s.logger.Info("starting web server on port %s", port)
	return s.router.Run(":" + port)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUser resolves the acting account. Authentication is out of scope;
// the single-user deployment maps every request to the default user.
func (s *Server) currentUser(c *gin.Context) (uuid.UUID, bool) {
	user, err := s.users.GetOrCreateDefaultUser(c.Request.Context())
	if err != nil {
		s.fail(c, errors.Wrap(err, "failed to resolve user"))
		return uuid.Nil, false
	}
	return user.ID, true
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("%s: %v", c.FullPath(), err)

	status := http.StatusInternalServerError
	if errors.GetCode(err) == errors.CodeNotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
