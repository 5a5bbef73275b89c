package http

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// Server owns the configured engine; it is the only thing the app layer
// needs to start the annotation HTTP surface.
type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg), log: cfg.Log}
}

func (s *Server) Run(address string) error {
	if s.log != nil {
		s.log.Info("HTTP server starting", "address", address)
	}
	return s.Engine.Run(address)
}
