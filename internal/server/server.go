// Package server exposes the huffman codec over HTTP.
package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/axiomhq/huffman/internal/compare"
)

var log = logging.MustGetLogger("huffman/server")

// Options configures a Server.
type Options struct {
	// MaxInputBytes caps request bodies; larger bodies get 413.
	MaxInputBytes int64
	// Codecs used by /api/v1/compare. Nil means compare.Codecs().
	Codecs []compare.Codec
}

// Server holds the request counters and the gin engine.
type Server struct {
	engine  *gin.Engine
	opts    Options
	started time.Time

	compressed   atomic.Uint64
	decompressed atomic.Uint64
	failures     atomic.Uint64
}

// New builds a Server with all routes registered.
func New(opts Options) (*Server, error) {
	if opts.Codecs == nil {
		codecs, err := compare.Codecs()
		if err != nil {
			return nil, err
		}
		opts.Codecs = codecs
	}
	s := &Server{engine: gin.New(), opts: opts, started: time.Now()}
	s.engine.Use(gin.Recovery(), s.limitBody)
	s.register()
	return s, nil
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) register() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/status", s.status)
		v1.POST("/compress", s.compress)
		v1.POST("/decompress", s.decompress)
		v1.POST("/compare", s.compare)
	}
}

func (s *Server) limitBody(c *gin.Context) {
	if s.opts.MaxInputBytes > 0 && c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxInputBytes)
	}
	c.Next()
}

// Stats is the body of /api/v1/status.
type Stats struct {
	Uptime       string `json:"uptime"`
	Compressed   uint64 `json:"compressed"`
	Decompressed uint64 `json:"decompressed"`
	Failures     uint64 `json:"failures"`
}

// Stats returns a snapshot of the counters.
func (s *Server) Stats() Stats {
	return Stats{
		Uptime:       time.Since(s.started).Round(time.Second).String(),
		Compressed:   s.compressed.Load(),
		Decompressed: s.decompressed.Load(),
		Failures:     s.failures.Load(),
	}
}

func (s *Server) status(c *gin.Context) {
	c.JSON(http.StatusOK, s.Stats())
}
