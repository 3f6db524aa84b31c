package handlers

import (
	"net/http"

	"civicmatch_backend/internal/auth"
	"civicmatch_backend/internal/middleware"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/services"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	docs := rg.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	docs.Use(middleware.RequireLevel(auth.LevelActive))
	{
		docs.POST("", h.Upload)
		docs.GET("", h.ListOwn)
		docs.GET("/:id/download", h.Download)
	}

	admin := rg.Group("/admin/documents")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireLevel(auth.LevelElevated))
	{
		admin.GET("", h.ListAll)
		admin.POST("/:id/review", h.Review)
	}
}

// Upload accepts a multipart form with a "file" part and a "type"
// field naming the document kind.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("missing file part"))
		return
	}

	docType := models.DocumentType(c.PostForm("type"))
	switch docType {
	case models.DocumentTypeIDProof, models.DocumentTypeAddressProof,
		models.DocumentTypeEducationalCertificate, models.DocumentTypeMarksheet,
		models.DocumentTypeOther:
	default:
		h.HandleServiceError(c, apperrors.NewBadRequestError("unknown document type"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	db := h.GetDB(c)

	doc, err := h.documentService.Upload(c.Request.Context(), db, &services.UploadInput{
		UserID:   userID,
		Type:     docType,
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Reader:   file,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	docs, err := h.documentService.ListOwn(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) Download(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	elevated := middleware.GetUserRole(c).IsElevated()

	url, err := h.documentService.Download(c.Request.Context(), db, c.Param("id"), userID, elevated)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListAll serves the review queue, optionally filtered by status.
func (h *DocumentHandler) ListAll(c *gin.Context) {
	status := models.DocumentStatus(c.Query("status"))
	switch status {
	case "", models.DocumentStatusPending, models.DocumentStatusVerified, models.DocumentStatusRejected:
	default:
		h.HandleServiceError(c, apperrors.NewBadRequestError("unknown status filter"))
		return
	}

	db := h.GetDB(c)

	docs, err := h.documentService.ListAll(db, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) Review(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var decision dto.ReviewDecision
	if !h.BindAndValidate_JSON(c, &decision) {
		return
	}

	db := h.GetDB(c)

	doc, err := h.documentService.Review(db, c.Param("id"), reviewerID, &decision)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
