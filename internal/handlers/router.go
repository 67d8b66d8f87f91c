package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/middleware"
	"github.com/justsurfingit/jobby-board/internal/views"
)

type RouterDependencies struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	Logger             *zap.Logger
	Cookie             auth.CookieOptions
	LoginRatePerMinute int
	CORSAllowedOrigins []string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.Use(middleware.RequestID(), middleware.AccessLog(logger), middleware.Recovery(logger))
	r.Use(middleware.Sessions(deps.Cookie))

	r.GET("/login", deps.AuthHandler.ShowLogin)
	r.POST("/login", middleware.RateLimit(deps.LoginRatePerMinute), deps.AuthHandler.Login)
	r.POST("/logout", deps.AuthHandler.Logout)

	gated := r.Group("/", middleware.RequireSession())
	{
		gated.GET("/", Home)
		gated.GET("/jobs", deps.JobHandler.ListJobs)
	}

	corsConfig := cors.DefaultConfig()
	if len(deps.CORSAllowedOrigins) == 0 || (len(deps.CORSAllowedOrigins) == 1 && deps.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = deps.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	api := r.Group("/api/v1", cors.New(corsConfig))
	{
		api.GET("/health", HealthCheck)
		api.GET("/jobs", middleware.RequireBearer(), deps.JobHandler.ListJobsJSON)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(NotFound)
	return r
}
