package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"mangacatalog/internal/microservices/http-api/dto"
	"mangacatalog/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the read-only country and type lists.
type LookupHandler struct {
	svc     service.LookupService
	logger  *slog.Logger
	timeout time.Duration
}

func NewLookupHandler(svc service.LookupService, logger *slog.Logger, timeout time.Duration) *LookupHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LookupHandler{svc: svc, logger: logger, timeout: timeout}
}

func (h *LookupHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/paises", h.Countries)
	r.GET("/tipos", h.Types)
}

func (h *LookupHandler) Countries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.svc.Countries(ctx)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	resp := make([]dto.LookupResponse, 0, len(list))
	for _, country := range list {
		resp = append(resp, dto.CountryFromModel(country))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) Types(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.svc.Types(ctx)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	resp := make([]dto.LookupResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, dto.TypeFromModel(t))
	}
	c.JSON(http.StatusOK, resp)
}
