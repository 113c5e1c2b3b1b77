package handler

import (
	"mime"
	"net/http"
	"strings"

	"logistics-backoffice/internal/usecase/document"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service *document.Service
}

func NewDocumentHandler(service *document.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	documents := router.Group("/documents")
	{
		documents.POST("", h.Create)
		documents.GET("", h.List)
		documents.GET("/:id", h.Get)
		update(documents, "/:id", h.Update)
		documents.GET("/:id/download", h.Download)
	}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req document.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentHandler) List(c *gin.Context) {
	var req document.ListDocumentsRequest
	if !bindQuery(c, &req) {
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req document.UpdateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contentType := d.FileType
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || !strings.Contains(mediaType, "/") {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.FileName}))
	c.Data(http.StatusOK, contentType, d.FileData)
}
