package handler

import (
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"doclib/internal/model"
	"doclib/internal/service"
)

const documentNotFound = "document not found"

// UploadDocument godoc
// @Summary      Upload a PDF document
// @Description  Multipart upload: the PDF in "file" plus catalog metadata fields. Limit 50 MiB.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "PDF file"
// @Param        title        formData  string  true   "Title"
// @Param        author       formData  string  true   "Author"
// @Param        category     formData  string  true   "Category"
// @Param        year         formData  int     false  "Publication year"
// @Param        description  formData  string  false  "Description"
// @Param        keywords     formData  string  false  "Keywords"
// @Param        uploadedBy   formData  string  false  "Uploader user ID"
// @Success      200  {object}  model.Document
// @Failure      400  {object}  errorPayload
// @Failure      413  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /api/documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeFileRequired, "file is required")
		}

		meta, details := documentMetadataFromForm(c)
		if details != nil {
			return writeErrorDetails(c, fiber.StatusBadRequest, CodeValidation, "validation failed", details)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeFileRequired, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			Reader:           f,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
			Metadata:         meta,
		})
		if err != nil {
			return writeServiceError(c, err, documentNotFound)
		}
		return c.Status(fiber.StatusOK).JSON(doc)
	}
}

// documentMetadataFromForm reads the metadata fields. Blank optional fields are left nil.
func documentMetadataFromForm(c *fiber.Ctx) (model.DocumentMetadata, map[string]string) {
	meta := model.DocumentMetadata{
		Title:       c.FormValue("title"),
		Author:      c.FormValue("author"),
		Category:    c.FormValue("category"),
		Description: optionalForm(c, "description"),
		Keywords:    optionalForm(c, "keywords"),
		UploadedBy:  optionalForm(c, "uploadedBy"),
	}
	if raw := strings.TrimSpace(c.FormValue("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return meta, map[string]string{"year": "must be a whole number"}
		}
		meta.Year = &year
	}
	return meta, nil
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// ListDocuments godoc
// @Summary      List or search documents
// @Description  search matches title, author, keywords or description (case-insensitive substring); category is an exact match.
// @Tags         documents
// @Produce      json
// @Param        search    query     string  false  "Free text"
// @Param        category  query     string  false  "Exact category"
// @Success      200  {array}   model.Document
// @Failure      500  {object}  errorPayload
// @Router       /api/documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var category *string
		if v := c.Query("category"); v != "" {
			category = &v
		}

		docs, err := svc.Search(c.UserContext(), c.Query("search"), category)
		if err != nil {
			return writeServiceError(c, err, documentNotFound)
		}
		if docs == nil {
			docs = []model.Document{}
		}
		return c.JSON(docs)
	}
}

// GetDocument godoc
// @Summary  Get document metadata
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID (UUID)"
// @Success  200  {object}  model.Document
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /api/documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, documentNotFound)
		}
		return c.JSON(doc)
	}
}

// DownloadDocument godoc
// @Summary  Download a document's PDF
// @Tags     documents
// @Produce  application/pdf
// @Param    id   path      string  true  "Document ID (UUID)"
// @Success  200  {file}    binary
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Failure  500  {object}  errorPayload
// @Router   /api/documents/{id}/download [get]
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "invalid id format")
		}
		dl, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, documentNotFound)
		}

		c.Attachment(dl.Filename)
		c.Set(fiber.HeaderContentType, service.PDFContentType)
		// The response body stream takes ownership of dl.Body and closes it.
		return c.SendStream(dl.Body, int(dl.Size))
	}
}

// DeleteDocument godoc
// @Summary  Delete a document and its file
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID (UUID)"
// @Success  200  {object}  messageResponse
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Failure  500  {object}  errorPayload
// @Router   /api/documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := validID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidID, "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, documentNotFound)
		}
		return c.JSON(messageResponse{Message: "Document deleted successfully"})
	}
}

// ServeUpload godoc
// @Summary      Raw stored file
// @Description  Serves a stored upload by its generated file name. No record lookup.
// @Tags         documents
// @Produce      application/pdf
// @Param        filename  path  string  true  "Generated file name"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorPayload
// @Router       /uploads/{filename} [get]
func ServeUpload(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, info, err := svc.OpenFile(c.UserContext(), c.Params("filename"))
		if err != nil {
			return writeServiceError(c, err, "file not found")
		}

		ct := info.ContentType
		if ct == "" {
			ct = mime.TypeByExtension(filepath.Ext(info.Key))
		}
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		return c.SendStream(body, int(info.Size))
	}
}
