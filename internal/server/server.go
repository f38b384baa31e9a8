package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/api"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/config"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/market"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP 서버
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer 서버 생성
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "odinspear.db"))
	if err != nil {
		log.Fatalf("데이터베이스 초기화 실패: %v", err)
	}

	client := market.NewClient()
	fx := market.NewFXProvider(client,
		cfg.Market.USDKRWFallback,
		time.Duration(cfg.Market.CacheTTLSeconds)*time.Second)

	handler := api.NewHandler(sqliteStore, fx, client, cfg)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 라우트 설정
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 라우트
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 정적 자원
	if devMode {
		// 개발 모드: 프런트 개발 서버로 프록시
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		sub, _ := fs.Sub(staticFiles, "dist")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		// SPA fallback
		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 자원 정리
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 저장소 (테스트용)
func (s *Server) GetStore() *store.Store {
	return s.store
}
