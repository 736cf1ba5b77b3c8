package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ganesh199/AI-APP-Personal/internal/chat"
	"github.com/ganesh199/AI-APP-Personal/internal/config"
	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	svc    *chat.Service
}

func New(cfg *config.Config, svc *chat.Service) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors(cfg.CORSOrigins))
	srv := &Server{cfg: cfg, engine: r, svc: svc}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.GET("/providers", s.listProviders)
	api.POST("/configure-multiple", s.configureMultiple)
	api.POST("/configure", s.configure)
	api.POST("/chat", s.chat)
	api.GET("/history/:session_id", s.history)
	api.GET("/sessions", s.sessions)
	api.DELETE("/clear/:session_id", s.clear)
	api.GET("/health", s.health)
	api.GET("/stats", s.stats)
}

// Handler exposes the routes without starting a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.engine,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info().Str("address", s.cfg.Address).Msg("relay listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func clientError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg, "detail": msg})
}

func (s *Server) listProviders(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Providers())
}

func (s *Server) configureMultiple(c *gin.Context) {
	var req map[string]chat.BulkEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "invalid request")
		return
	}
	n := s.svc.ConfigureBulk(req)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"configured_count": n,
		"message":          fmt.Sprintf("Configured %d providers", n),
	})
}

type configureRequest struct {
	Provider  string          `json:"provider"`
	Config    provider.Config `json:"config"`
	SessionID string          `json:"session_id"`
}

func (s *Server) configure(c *gin.Context) {
	var req configureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "invalid request")
		return
	}
	res, err := s.svc.Configure(req.Provider, req.Config, req.SessionID)
	var verr *chat.ValidationError
	switch {
	case errors.As(err, &verr):
		clientError(c, http.StatusBadRequest, verr.Message)
		return
	case err != nil:
		log.Error().Err(err).Str("provider", req.Provider).Msg("configuration error")
		clientError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"provider":     res.Provider,
		"model":        res.Model,
		"session_id":   res.SessionID,
		"provider_key": res.ProviderKey,
	})
}

type chatRequest struct {
	Message     string `json:"message"`
	SessionID   string `json:"session_id"`
	ProviderKey string `json:"provider_key"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "invalid request")
		return
	}
	reply, err := s.svc.Chat(c.Request.Context(), req.Message, req.SessionID, req.ProviderKey)
	var verr *chat.ValidationError
	switch {
	case errors.As(err, &verr):
		clientError(c, http.StatusBadRequest, verr.Message)
		return
	case err != nil:
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("chat error")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"response":   reply.Response,
		"provider":   reply.Provider,
		"model":      reply.Model,
		"session_id": reply.SessionID,
	})
}

func (s *Server) history(c *gin.Context) {
	id := c.Param("session_id")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"history":    s.svc.History(id),
		"session_id": id,
	})
}

func (s *Server) sessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "sessions": s.svc.Sessions()})
}

func (s *Server) clear(c *gin.Context) {
	id := c.Param("session_id")
	s.svc.Clear(id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Session %s cleared", id)})
}

func (s *Server) health(c *gin.Context) {
	h := s.svc.Health()
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"status":          h.Status,
		"active_sessions": h.ActiveSessions,
		"providers":       h.Providers,
	})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "providers": s.svc.Stats()})
}
