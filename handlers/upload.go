package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

// Ingestor validates and uploads media files. Satisfied by
// *storage.Ingestor.
type Ingestor interface {
	Ingest(ctx context.Context, category storage.Category, filename, mimeType string, content []byte) (*storage.IngestResult, error)
}

// ProfileUpdater stores media references on user profiles. Satisfied by
// *storage.FirestoreClient.
type ProfileUpdater interface {
	UpdateUserCV(ctx context.Context, id, cvUrl, cvPublicID string) error
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
}

// UploadHandler handles CV and logo uploads
type UploadHandler struct {
	ingestor Ingestor
	profiles ProfileUpdater
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(ingestor Ingestor, profiles ProfileUpdater) *UploadHandler {
	return &UploadHandler{ingestor: ingestor, profiles: profiles}
}

// UploadCV handles candidate CV uploads
// @Summary Upload a CV
// @Description Upload a CV file (PDF, DOC, DOCX; max 5MB). When userId is provided, the CV is attached to that candidate's profile.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param cv formData file true "CV file"
// @Param userId formData string false "Candidate ID to attach the CV to"
// @Success 200 {object} models.UploadResponse "Upload accepted"
// @Failure 400 {object} models.ErrorResponse "File too large or invalid type"
// @Failure 500 {object} models.ErrorResponse "Upload failed"
// @Router /upload-cv [post]
func (h *UploadHandler) UploadCV(c *gin.Context) {
	h.upload(c, "cv", storage.CategoryCV)
}

// UploadLogo handles recruiter company logo uploads
// @Summary Upload a company logo
// @Description Upload a logo file (JPEG, PNG, WEBP, SVG; max 2MB). When userId is provided, the logo is attached to that recruiter's profile.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo file"
// @Param userId formData string false "Recruiter ID to attach the logo to"
// @Success 200 {object} models.UploadResponse "Upload accepted"
// @Failure 400 {object} models.ErrorResponse "File too large or invalid type"
// @Failure 500 {object} models.ErrorResponse "Upload failed"
// @Router /upload-logo [post]
func (h *UploadHandler) UploadLogo(c *gin.Context) {
	h.upload(c, "logo", storage.CategoryLogo)
}

func (h *UploadHandler) upload(c *gin.Context, field string, category storage.Category) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "File field '" + field + "' is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read uploaded file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	result, err := h.ingestor.Ingest(c.Request.Context(), category, header.Filename, header.Header.Get("Content-Type"), buf.Bytes())
	if err != nil {
		var ingestErr *storage.IngestError
		if errors.As(err, &ingestErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: ingestErr.Message,
				Code:  http.StatusBadRequest,
			})
			return
		}

		log.Printf("[UploadHandler] Upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Upload failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	// Attach the new reference to the profile when a user is named
	if userID := c.PostForm("userId"); userID != "" {
		var attachErr error
		if category == storage.CategoryCV {
			attachErr = h.profiles.UpdateUserCV(c.Request.Context(), userID, result.URL, result.PublicID)
		} else {
			attachErr = h.profiles.UpdateUser(c.Request.Context(), userID, map[string]interface{}{
				"companyLogoUrl": result.URL,
				"companyLogoId":  result.PublicID,
			})
		}
		if attachErr != nil {
			log.Printf("[UploadHandler] Failed to attach %s to user %s: %v", category, userID, attachErr)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Upload succeeded but saving the reference failed",
				Code:    http.StatusInternalServerError,
				Details: attachErr.Error(),
			})
			return
		}
	}

	log.Printf("[UploadHandler] %s uploaded: %s", category, result.PublicID)
	c.JSON(http.StatusOK, models.UploadResponse{
		Success:  true,
		URL:      result.URL,
		PublicID: result.PublicID,
	})
}
