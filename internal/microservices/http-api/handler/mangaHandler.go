package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"mangacatalog/internal/microservices/http-api/apperr"
	"mangacatalog/internal/microservices/http-api/dto"
	"mangacatalog/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MangaHandler struct {
	svc     service.MangaService
	logger  *slog.Logger
	timeout time.Duration
}

func NewMangaHandler(svc service.MangaService, logger *slog.Logger, timeout time.Duration) *MangaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MangaHandler{svc: svc, logger: logger, timeout: timeout}
}

func (h *MangaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MangaHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	resp := make([]dto.MangaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromModelToResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MangaHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		fail(c, h.logger, apperr.BadRequest(apperr.MsgInvalidID))
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*m))
}

func (h *MangaHandler) Create(c *gin.Context) {
	var in dto.MangaRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, h.logger, apperr.BadRequest(apperr.MsgInvalidBody))
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	created, err := h.svc.Create(ctx, in)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	h.logger.Info("manga_created", "manga_id", created.ID)
	c.JSON(http.StatusCreated, dto.SummaryFromModel(*created))
}

// Update handles PUT /mangas/:id. The response carries only id, nombre, pais
// and tipo.
func (h *MangaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		fail(c, h.logger, apperr.BadRequest(apperr.MsgInvalidID))
		return
	}

	var in dto.MangaRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, h.logger, apperr.BadRequest(apperr.MsgInvalidBody))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	updated, err := h.svc.Update(ctx, id, in)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	h.logger.Info("manga_updated", "manga_id", updated.ID)
	c.JSON(http.StatusOK, dto.SummaryFromModel(*updated))
}

func (h *MangaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		fail(c, h.logger, apperr.BadRequest(apperr.MsgInvalidID))
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	h.logger.Info("manga_deleted", "manga_id", deleted.ID)
	c.JSON(http.StatusOK, dto.SummaryFromModel(*deleted))
}
