// Package site hosts the public portfolio site and its content API.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/site/platform/httpx"
	"github.com/sukrucan/portfolio/internal/site/static"
	"github.com/sukrucan/portfolio/internal/site/storage"
	filestore "github.com/sukrucan/portfolio/internal/site/storage/file"
	sqlitestore "github.com/sukrucan/portfolio/internal/site/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// Storage driver names accepted by Config.StorageDriver.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr      string
	AdminSecret   string
	StorageDriver string
	ContentPath   string
	DatabasePath  string
	Logger        *log.Logger
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	blobs      storage.BlobStore
	engine     *content.Store
	secret     string
	logger     *log.Logger
	closers    []func() error
}

// NewServer validates config, opens the blob store, and constructs a site
// server. The content cache is primed from the store; a priming failure is
// logged and the static fallback serves until content becomes available.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	secret := strings.TrimSpace(cfg.AdminSecret)
	if secret == "" {
		return nil, errors.New("admin secret is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	srv := &Server{
		httpAddr: httpAddr,
		secret:   secret,
		logger:   logger,
	}

	blobs, closer, err := openBlobStore(cfg)
	if err != nil {
		return nil, err
	}
	srv.blobs = blobs
	if closer != nil {
		srv.closers = append(srv.closers, closer)
	}

	srv.engine = content.NewStore(&blobClient{blobs: blobs}, content.Fallback())
	if err := srv.engine.Load(ctx); err != nil {
		logger.Printf("prime content cache: %v (serving fallback)", err)
	}

	srv.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, nil
}

func openBlobStore(cfg Config) (storage.BlobStore, func() error, error) {
	driver := strings.TrimSpace(cfg.StorageDriver)
	if driver == "" {
		driver = DriverFile
	}
	switch driver {
	case DriverFile:
		path := strings.TrimSpace(cfg.ContentPath)
		if path == "" {
			return nil, nil, errors.New("content path is required for the file driver")
		}
		store, err := filestore.New(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file content store: %w", err)
		}
		return store, nil, nil
	case DriverSQLite:
		path := strings.TrimSpace(cfg.DatabasePath)
		if path == "" {
			return nil, nil, errors.New("database path is required for the sqlite driver")
		}
		store, err := sqlitestore.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite content store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /api/content", s.handleGetContent)
	mux.HandleFunc("POST /api/content", s.handlePostContent)
	mux.HandleFunc("POST /api/admin/login", s.handleAdminLogin)
	mux.HandleFunc("POST /api/admin/logout", s.handleAdminLogout)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(s.logger),
	)
}

// Handler exposes the composed HTTP surface, primarily for tests.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// Engine exposes the content cache, primarily for tests.
func (s *Server) Engine() *content.Store {
	if s == nil {
		return nil
	}
	return s.engine
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// failure.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	for _, closer := range s.closers {
		_ = closer()
	}
}

// blobClient adapts a blob store to the content engine's remote client
// interface so server-side mutations share the engine's persistence path.
type blobClient struct {
	blobs storage.BlobStore
}

func (c *blobClient) Fetch(ctx context.Context) (content.Document, error) {
	return c.blobs.Load(ctx)
}

func (c *blobClient) Persist(ctx context.Context, doc content.Document) error {
	return c.blobs.Save(ctx, doc)
}
