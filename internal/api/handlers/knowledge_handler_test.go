package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ccc-smartassist/internal/models"
	"ccc-smartassist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubKnowledgeStore struct {
	items []models.KnowledgeItem
}

func (s *stubKnowledgeStore) Create(ctx context.Context, item *models.KnowledgeItem) error {
	s.items = append(s.items, *item)
	return nil
}

func (s *stubKnowledgeStore) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	return s.items, nil
}

func (s *stubKnowledgeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(data []byte) (string, error) {
	return s.text, s.err
}

func newKnowledgeTestApp(store *stubKnowledgeStore, extractor *stubExtractor) *fiber.App {
	knowledgeService := service.NewKnowledgeService(store, extractor, zap.NewNop())
	handler := NewKnowledgeHandler(knowledgeService, zap.NewNop())

	app := fiber.New()
	app.Post("/knowledge/upload", handler.Upload)
	return app
}

func uploadPDF(t *testing.T, app *fiber.App, withFile bool) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if withFile {
		fw, err := writer.CreateFormFile("file", "handbook.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 payload"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.WriteField("title", "Student Handbook"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/knowledge/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUploadStoresExtractedText(t *testing.T) {
	store := &stubKnowledgeStore{}
	app := newKnowledgeTestApp(store, &stubExtractor{text: "Section 1. Attendance policy."})

	resp := uploadPDF(t, app, true)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Student Handbook", body["question"])
	assert.Equal(t, "pdf", body["source"])

	require.Len(t, store.items, 1)
	assert.Equal(t, "Section 1. Attendance policy.", store.items[0].Answer)
}

// A document with no extractable text is a client error, not a server one.
func TestUploadRejectsTextlessDocument(t *testing.T) {
	store := &stubKnowledgeStore{}
	app := newKnowledgeTestApp(store, &stubExtractor{err: service.ErrEmptyDocument})

	resp := uploadPDF(t, app, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.items, "nothing is stored for a rejected document")
}

func TestUploadRequiresFile(t *testing.T) {
	app := newKnowledgeTestApp(&stubKnowledgeStore{}, &stubExtractor{})

	resp := uploadPDF(t, app, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
