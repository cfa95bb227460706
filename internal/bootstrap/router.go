package bootstrap

import (
	"net/http"

	httpapi "github.com/CampusAssist-QA/campus-qa-backend/internal/api/http"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/middleware"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/content"
	qahttp "github.com/CampusAssist-QA/campus-qa-backend/internal/qa/http"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          *content.Store
	AskService     *service.AskService
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	qaHandler := qahttp.New(dep.AskService)
	qaHandler.Register(api)

	return r
}
