// Package server exposes the resume analysis pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/jobs"
	"github.com/avoronov/go_skillmap/internal/resume"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

// Reference files under the data directory.
const (
	catalogFile = "roadmaps_role_skill.json"
	jobsFile    = "linkedin_jobs_processed.json"
	resumesFile = "resume_skills.json"
)

// Config holds the HTTP listener settings.
type Config struct {
	Addr  string
	Debug bool
}

// Server wires the analyzer, the resume log and the job postings behind a
// gin router. Reference data is loaded once at startup.
type Server struct {
	analyzer *resume.Analyzer
	store    *resume.Store
	jobsDoc  *jobs.Doc // nil when the postings file is absent
	router   *gin.Engine
	http     *http.Server
}

// New loads reference data and builds the router. A missing skill catalog is
// fatal; missing job postings only disable the job endpoints.
func New(cfg Config) (*Server, error) {
	cat, err := resume.LoadCatalog(filepath.Join(engine.Cfg.DataDir, catalogFile))
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	var jobsDoc *jobs.Doc
	jobsPath := filepath.Join(engine.Cfg.DataDir, jobsFile)
	if _, err := os.Stat(jobsPath); err == nil {
		var doc jobs.Doc
		if err := roadmap.ReadJSON(jobsPath, &doc); err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		jobsDoc = &doc
		slog.Info("server: job postings loaded", slog.Int("jobs", len(doc.Jobs)))
	} else {
		slog.Warn("server: job postings file missing, job matching disabled", slog.String("path", jobsPath))
	}

	if err := os.MkdirAll(engine.Cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("server: mkdir %s: %w", engine.Cfg.UploadDir, err)
	}

	s := &Server{
		analyzer: &resume.Analyzer{Catalog: cat, Jobs: jobsDoc},
		store:    resume.NewStore(filepath.Join(engine.Cfg.OutputDir, resumesFile)),
		jobsDoc:  jobsDoc,
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())
	router.MaxMultipartMemory = engine.Cfg.MaxUploadMiB << 20

	router.POST("/upload", s.handleUpload)
	router.GET("/resumes", s.handleResumes)
	router.GET("/jobs", s.handleJobs)
	router.GET("/healthz", s.handleHealthz)
	router.GET("/metrics", s.handleMetrics)

	s.router = router
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Router returns the gin engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server: listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	slog.Info("server: stopped")
	return nil
}

// requestLogger logs one line per request with method, path, status and
// latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}
