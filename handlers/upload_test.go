package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/plateformprojob/backend/models"
	"github.com/plateformprojob/backend/storage"
)

type stubIngestor struct {
	result   *storage.IngestResult
	err      error
	category storage.Category
	mimeType string
}

func (s *stubIngestor) Ingest(ctx context.Context, category storage.Category, filename, mimeType string, content []byte) (*storage.IngestResult, error) {
	s.category = category
	s.mimeType = mimeType
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubProfileUpdater struct {
	cvUserID string
	cvURL    string
	updates  map[string]interface{}
}

func (s *stubProfileUpdater) UpdateUserCV(ctx context.Context, id, cvUrl, cvPublicID string) error {
	s.cvUserID = id
	s.cvURL = cvUrl
	return nil
}

func (s *stubProfileUpdater) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	s.updates = updates
	return nil
}

func newUploadRouter(ingestor Ingestor, profiles ProfileUpdater) *gin.Engine {
	h := NewUploadHandler(ingestor, profiles)
	router := gin.New()
	router.POST("/api/upload-cv", h.UploadCV)
	router.POST("/api/upload-logo", h.UploadLogo)
	return router
}

func multipartFile(t *testing.T, field, filename, contentType string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write([]byte("file-content"))

	for k, v := range extra {
		writer.WriteField(k, v)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadCV(t *testing.T) {
	t.Parallel()

	ingestor := &stubIngestor{result: &storage.IngestResult{URL: "https://media/cvs/resume_1712.pdf", PublicID: "cvs/resume_1712.pdf"}}
	router := newUploadRouter(ingestor, &stubProfileUpdater{})

	body, contentType := multipartFile(t, "cv", "resume.pdf", "application/pdf", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ingestor.category != storage.CategoryCV {
		t.Fatalf("expected cv category, got %q", ingestor.category)
	}
	if ingestor.mimeType != "application/pdf" {
		t.Fatalf("expected declared MIME type forwarded, got %q", ingestor.mimeType)
	}

	var resp models.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.URL == "" || resp.PublicID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUploadCVAttachesToProfile(t *testing.T) {
	t.Parallel()

	ingestor := &stubIngestor{result: &storage.IngestResult{URL: "https://media/cvs/resume_1712.pdf", PublicID: "cvs/resume_1712.pdf"}}
	profiles := &stubProfileUpdater{}
	router := newUploadRouter(ingestor, profiles)

	body, contentType := multipartFile(t, "cv", "resume.pdf", "application/pdf", map[string]string{"userId": "cand-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if profiles.cvUserID != "cand-1" || profiles.cvURL == "" {
		t.Fatalf("expected CV attached to profile, got %+v", profiles)
	}
}

func TestUploadCVRejectionMessage(t *testing.T) {
	t.Parallel()

	ingestor := &stubIngestor{err: &storage.IngestError{Reason: storage.ReasonTooLarge, Message: "File is too large. Max 5MB."}}
	router := newUploadRouter(ingestor, &stubProfileUpdater{})

	body, contentType := multipartFile(t, "cv", "big.pdf", "application/pdf", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "File is too large. Max 5MB." {
		t.Fatalf("expected exact rejection message, got %q", resp.Error)
	}
}

func TestUploadLogoAttachesToProfile(t *testing.T) {
	t.Parallel()

	ingestor := &stubIngestor{result: &storage.IngestResult{URL: "https://media/logos/acme_1712.png", PublicID: "logos/acme_1712.png"}}
	profiles := &stubProfileUpdater{}
	router := newUploadRouter(ingestor, profiles)

	body, contentType := multipartFile(t, "logo", "acme.png", "image/png", map[string]string{"userId": "rec-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-logo", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ingestor.category != storage.CategoryLogo {
		t.Fatalf("expected logo category, got %q", ingestor.category)
	}
	if profiles.updates["companyLogoUrl"] != "https://media/logos/acme_1712.png" {
		t.Fatalf("expected logo attached to profile, got %v", profiles.updates)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	t.Parallel()

	router := newUploadRouter(&stubIngestor{}, &stubProfileUpdater{})

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload-cv", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a file, got %d", w.Code)
	}
}
