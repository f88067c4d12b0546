package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/idea-to-deploy/forge-backend/internal/api/http"
	"github.com/idea-to-deploy/forge-backend/internal/api/http/middleware"
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	projecthttp "github.com/idea-to-deploy/forge-backend/internal/projects/http"
	"github.com/idea-to-deploy/forge-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Environment string
	DataDir     string
	Projects    *service.ProjectService
	Log         *logger.Logger
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DataDir)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projectsGroup := api.Group("/projects")
	handler := projecthttp.New(dep.Projects, dep.Log)
	handler.Register(projectsGroup)

	return r
}
