// Package server exposes the lesson pipeline and the stored corpus over
// HTTP: a small REST surface for the web frontend plus a tool registry
// for programmatic callers.
package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/lessonforge/internal/pipeline"
	"github.com/abhisek/lessonforge/internal/store"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":8080"

// Config selects the listen address, the log/engine mode and the allowed
// CORS origins.
type Config struct {
	Addr string

	// Mode is "prod" or "dev". It drives both the zap encoder and the gin
	// release mode.
	Mode string

	// AllowOrigins overrides the development origin list.
	AllowOrigins []string
}

func (c Config) address() string {
	if c.Addr == "" {
		return DefaultAddr
	}
	return c.Addr
}

// Deps are the collaborators the routes dispatch to. Log may be nil, in
// which case New builds one from the configured mode.
type Deps struct {
	Coordinator *pipeline.Coordinator
	Transcriber *transcribe.Adapter
	Plans       store.PlanRepo
	Transcripts store.TranscriptRepo
	Log         *zap.SugaredLogger
}

// Server is the configured HTTP surface. Engine is exported for tests
// that drive it through httptest without a listener.
type Server struct {
	Engine *gin.Engine

	log  *zap.SugaredLogger
	addr string
}

// New wires the routes. The tool registry is derived from the same
// dependencies the REST routes use, so both surfaces stay in lockstep.
func New(cfg Config, deps Deps) (*Server, error) {
	log := deps.Log
	if log == nil {
		var err error
		log, err = newLogger(cfg.Mode)
		if err != nil {
			return nil, err
		}
	}

	if strings.EqualFold(cfg.Mode, "prod") || strings.EqualFold(cfg.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &handlers{
		coordinator: deps.Coordinator,
		transcriber: deps.Transcriber,
		plans:       deps.Plans,
		transcripts: deps.Transcripts,
		tools:       newToolRegistry(deps.Coordinator, deps.Plans, deps.Transcripts),
		log:         log,
	}

	return &Server{
		Engine: newRouter(h, cfg.AllowOrigins, log),
		log:    log,
		addr:   cfg.address(),
	}, nil
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	s.log.Infow("listening", "addr", s.addr)
	return s.Engine.Run(s.addr)
}

func newRouter(h *handlers, origins []string, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware(origins))

	r.GET("/api/health", h.health)

	api := r.Group("/api")
	{
		api.POST("/lessons", h.createLesson)
		api.GET("/lessons", h.listLessons)
		api.GET("/lessons/:id", h.getLesson)
		api.DELETE("/lessons/:id", h.deleteLesson)
		api.POST("/transcribe", h.transcribeAudio)
	}

	r.POST("/download/:id", h.downloadLesson)

	r.GET("/tools", h.listTools)
	r.POST("/tools/execute", h.executeTool)

	return r
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}
