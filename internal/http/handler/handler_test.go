package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"doclib/internal/model"
	"doclib/internal/service"
	serviceMocks "doclib/internal/service/mocks"
	"doclib/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n%%EOF\n")

// multipartBody builds an upload form. The file part carries contentType when non-empty.
func multipartBody(t *testing.T, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, CodeServiceUnavailable, decodeError(t, resp).Error.Code)
	})

	t.Run("no database configured", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/api/users", RegisterUser(mockSvc))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		in := model.NewUser{FullName: "Ada", Email: "ada@example.com"}
		mockSvc.On("Register", mock.Anything, in).Return(&model.User{ID: uuid.NewString(), FullName: "Ada", Email: "ada@example.com"}, nil).Once()

		resp := post(`{"fullName":"Ada","email":"ada@example.com"}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var u model.User
		json.NewDecoder(resp.Body).Decode(&u)
		assert.Equal(t, "ada@example.com", u.Email)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateEmail).Once()

		resp := post(`{"fullName":"Ada","email":"ada@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, CodeDuplicateEmail, res.Error.Code)
		assert.Equal(t, "user with this email already exists", res.Message)
	})

	t.Run("validation details", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Details: map[string]string{"email": "must be a valid email"}}).Once()

		resp := post(`{"fullName":"Ada","email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, CodeValidation, res.Error.Code)
		assert.Equal(t, "must be a valid email", res.Error.Details["email"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post(`{"fullName":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeValidation, decodeError(t, resp).Error.Code)
	})
}

func TestListUsers(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Get("/api/users", ListUsers(mockSvc))

	mockSvc.On("List", mock.Anything).Return(nil, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestGetUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Get("/api/users/:id", GetUser(mockSvc))

	id := uuid.NewString()
	mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "user not found", decodeError(t, resp).Message)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/api/documents", ListDocuments(mockSvc))

	t.Run("no filters", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "", (*string)(nil)).
			Return([]model.Document{{ID: uuid.NewString(), Title: "El Aleph"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("search and category", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "aleph", mock.MatchedBy(func(c *string) bool {
			return c != nil && *c == "novela"
		})).Return([]model.Document{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents?search=aleph&category=novela", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty category is no filter", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "x", (*string)(nil)).Return(nil, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents?search=x&category=", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `[]`, string(raw))
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "", (*string)(nil)).Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, CodeInternal, decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/api/documents", UploadDocument(mockSvc))

	fields := map[string]string{"title": "Test", "author": "A", "category": "ensayo", "year": "1949", "keywords": " "}

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(t, "test.pdf", "application/pdf", pdfBytes, fields)

		expectedDoc := &model.Document{ID: uuid.NewString(), Title: "Test", FileSize: int64(len(pdfBytes))}
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.OriginalFilename == "test.pdf" &&
				in.ContentType == "application/pdf" &&
				in.Size == int64(len(pdfBytes)) &&
				in.Metadata.Title == "Test" &&
				in.Metadata.Year != nil && *in.Metadata.Year == 1949 &&
				in.Metadata.Keywords == nil
		})).Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expectedDoc.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/documents", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeFileRequired, decodeError(t, resp).Error.Code)
	})

	t.Run("bad year", func(t *testing.T) {
		body, ct := multipartBody(t, "test.pdf", "application/pdf", pdfBytes, map[string]string{"title": "T", "year": "MCMXLIX"})

		req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, CodeValidation, res.Error.Code)
		assert.Contains(t, res.Error.Details, "year")
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "unsupported type", err: service.ErrUnsupportedFileType, wantStatus: http.StatusBadRequest, wantCode: CodeUnsupportedFileType},
		{name: "too large", err: service.ErrFileTooLarge, wantStatus: http.StatusBadRequest, wantCode: CodeFileTooLarge},
		{name: "storage failure", err: service.ErrStorageIO, wantStatus: http.StatusInternalServerError, wantCode: CodeStorageIO},
		{name: "unexpected", err: errors.New("upload failed"), wantStatus: http.StatusInternalServerError, wantCode: CodeInternal},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			body, ct := multipartBody(t, "test.txt", "", []byte("hello"), fields)
			mockSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
			req.Header.Set("Content-Type", ct)
			resp, _ := app.Test(req)

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, decodeError(t, resp).Error.Code)
		})
	}
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/api/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Document{ID: id, Title: "Test"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, CodeNotFound, res.Error.Code)
		assert.Equal(t, "document not found", res.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeInvalidID, decodeError(t, resp).Error.Code)
	})
}

func TestDownloadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/api/documents/:id/download", DownloadDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Download", mock.Anything, id).Return(&service.Download{
			Document: &model.Document{ID: id, Title: "Test"},
			Body:     io.NopCloser(bytes.NewReader(pdfBytes)),
			Size:     int64(len(pdfBytes)),
			Filename: "Test.pdf",
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+id+"/download", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Test.pdf"`, resp.Header.Get("Content-Disposition"))
		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, pdfBytes, raw)
		mockSvc.AssertExpectations(t)
	})

	t.Run("file missing", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Download", mock.Anything, id).Return(nil, service.ErrFileMissing).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+id+"/download", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, CodeFileMissing, decodeError(t, resp).Error.Code)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/api/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/documents/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messageResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Document deleted successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/documents/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, CodeNotFound, decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/documents/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestServeUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/uploads/:filename", ServeUpload(mockSvc))

	mockSvc.On("OpenFile", mock.Anything, "01J.pdf").
		Return(io.NopCloser(bytes.NewReader(pdfBytes)), storage.ObjectInfo{Key: "01J.pdf", Size: int64(len(pdfBytes))}, nil).Once()
	mockSvc.On("OpenFile", mock.Anything, "missing.pdf").Return(nil, storage.ObjectInfo{}, service.ErrNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/01J.pdf", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, pdfBytes, raw)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/uploads/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestGetStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockStatsService)
	app := fiber.New()
	app.Get("/api/stats", GetStats(mockSvc))

	mockSvc.On("Snapshot", mock.Anything).Return(&model.Stats{TotalUsers: 3, TotalDocuments: 8, TodayDownloads: 120, Storage: "1.2 MiB"}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"totalUsers":3,"totalDocuments":8,"todayDownloads":120,"storage":"1.2 MiB"}`, string(raw))
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		BodyLimit:    1024,
	})

	RegisterRoutes(app, Deps{
		Users:     new(serviceMocks.MockUserService),
		Documents: new(serviceMocks.MockDocumentService),
		Stats:     new(serviceMocks.MockStatsService),
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, CodeNotFound, decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, CodeMethodNotAllowed, decodeError(t, resp).Error.Code)
	})

	t.Run("body over limit", func(t *testing.T) {
		body, ct := multipartBody(t, "big.pdf", "application/pdf", make([]byte, 4096), nil)
		req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
		req.Header.Set("Content-Type", ct)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		assert.Equal(t, CodeFileTooLarge, decodeError(t, resp).Error.Code)
	})
}
