package http

import (
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	log *logger.Logger
}

func New(svc *service.ProjectService, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}
