package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"mangacatalog/internal/microservices/http-api/middleware"
	"mangacatalog/internal/microservices/http-api/service"
)

// RouterDeps is everything NewRouter wires into the engine.
type RouterDeps struct {
	Mangas         service.MangaService
	Lookups        service.LookupService
	DB             Pinger
	Logger         *slog.Logger
	CORSOrigins    []string
	RateLimiter    *middleware.RateLimiter
	RequestTimeout time.Duration
}

func NewRouter(d RouterDeps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORS(d.CORSOrigins))
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware())
	}

	r.GET("/check-conn", CheckConn(d.DB))

	NewMangaHandler(d.Mangas, d.Logger, d.RequestTimeout).RegisterRoutes(r.Group("/mangas"))
	NewLookupHandler(d.Lookups, d.Logger, d.RequestTimeout).RegisterRoutes(r)
	return r
}
