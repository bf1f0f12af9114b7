package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "vault/internal/errors"
	"vault/internal/service"
)

// DocumentHandler handles the content library endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Upload godoc
// @Summary Upload a document
// @Tags documents
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "File"
// @Success 201 {object} model.Document
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "title is required",
			Code:  "MISSING_TITLE",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "no file uploaded",
			Code:  "MISSING_FILE",
		})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unreadable file",
			Code:  "INVALID_FILE",
		})
	}
	defer src.Close()

	doc, err := h.docService.Upload(c.Request().Context(), user, service.UploadInput{
		Title:       title,
		Description: c.FormValue("description"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, doc)
}

// List godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} model.Document
// @Router /api/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.docService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, docs)
}

// Get godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid document id",
			Code:  "INVALID_ID",
		})
	}

	doc, err := h.docService.Get(c.Request().Context(), user, id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doc)
}
