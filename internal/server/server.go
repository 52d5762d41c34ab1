package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Jeff9497/Job8earch/internal/catalog"
	"github.com/Jeff9497/Job8earch/internal/config"
	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/Jeff9497/Job8earch/internal/logger"
	"github.com/Jeff9497/Job8earch/internal/services"
	"github.com/Jeff9497/Job8earch/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type chatService interface {
	Chat(ctx context.Context, message, persona, model string) services.ChatReply
	Models() []entities.ModelInfo
}

type skillsAdvisor interface {
	Analyze(ctx context.Context, jobTitle, jobDescription string) services.SkillsAnalysis
}

type jobAnalyst interface {
	Analyze(ctx context.Context, posting entities.JobPosting) services.JobAnalysis
}

type interviewCoach interface {
	Prepare(ctx context.Context, jobTitle, company, experience string) services.InterviewGuidance
}

type availabilityChecker interface {
	Report(ctx context.Context) services.AvailabilityReport
}

// Handler bundles the service dependencies behind the HTTP surface.
type Handler struct {
	catalog      *catalog.Catalog
	chat         chatService
	skills       skillsAdvisor
	analyst      jobAnalyst
	coach        interviewCoach
	availability availabilityChecker
	sessions     *session.Store
}

func NewHandler(cat *catalog.Catalog, chat chatService, skills skillsAdvisor, analyst jobAnalyst,
	coach interviewCoach, availability availabilityChecker, sessions *session.Store) *Handler {
	return &Handler{
		catalog:      cat,
		chat:         chat,
		skills:       skills,
		analyst:      analyst,
		coach:        coach,
		availability: availability,
		sessions:     sessions,
	}
}

type Server struct {
	http *http.Server
}

func New(cfg config.ServerConfig, handler *Handler) *Server {
	return &Server{http: &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: NewRouter(handler, cfg.AllowedOrigins),
	}}
}

func (s *Server) Run() error {
	log.Infof("http server listening on %v", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")
	{
		api.GET("/health", handler.health)

		api.GET("/jobs", handler.searchJobs)
		api.GET("/jobs/categories", handler.categories)
		api.GET("/jobs/locations", handler.locations)
		api.GET("/jobs/:id", handler.jobDetails)
		api.POST("/jobs/:id/analyze", handler.analyzeJob)

		api.POST("/skills/analyze", handler.analyzeSkills)
		api.POST("/interview/prepare", handler.prepareInterview)

		api.POST("/chat", handler.sendChat)
		api.POST("/chat/reset", handler.resetChat)
		api.GET("/chat/history", handler.chatHistory)

		api.GET("/models", handler.listModels)
		api.GET("/models/availability", handler.modelAvailability)
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).Error("request failed")
		} else {
			entry.Debug("request handled")
		}
	}
}
