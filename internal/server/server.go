// Package server exposes the scan results over HTTP: an HTML table for
// browsers, a JSON API, and a refresh trigger.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raosahab3333/1000cr/internal/model"
	"github.com/raosahab3333/1000cr/internal/recorder"
)

// ScanService is the part of the scheduler the web layer needs.
type ScanService interface {
	LatestSignals() ([]model.Signal, error)
	RunScan(trigger string, refresh bool) (*recorder.ScanRun, error)
}

// Server renders scan results.
type Server struct {
	svc ScanService
}

// New creates a Server backed by svc.
func New(svc ScanService) *Server {
	return &Server{svc: svc}
}

// Handler builds the gin engine. templateGlob may be empty (API only, used
// by tests); otherwise it points at the HTML templates.
func (s *Server) Handler(templateGlob string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
		r.GET("/", s.handleIndex)
	}
	r.GET("/api/signals", s.handleSignals)
	r.POST("/api/refresh", s.handleRefresh)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func (s *Server) handleIndex(c *gin.Context) {
	signals, err := s.svc.LatestSignals()
	if err != nil {
		log.Printf("[ERROR] render index: %v", err)
		c.String(http.StatusServiceUnavailable, "scan failed: %v", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Signals":     signals,
		"GeneratedAt": time.Now().Format("2006-01-02 15:04:05"),
	})
}

func (s *Server) handleSignals(c *gin.Context) {
	signals, err := s.svc.LatestSignals()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if signals == nil {
		signals = []model.Signal{}
	}
	c.JSON(http.StatusOK, gin.H{"signals": signals, "count": len(signals)})
}

func (s *Server) handleRefresh(c *gin.Context) {
	run, err := s.svc.RunScan("WEB", true)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scanned": run.Scanned,
		"skipped": run.Skipped,
		"signals": len(run.Signals),
	})
}
