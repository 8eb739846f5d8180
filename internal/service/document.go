package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"doclib/internal/config"
	"doclib/internal/logging"
	"doclib/internal/model"
	"doclib/internal/repository"
	"doclib/internal/storage"
	"doclib/internal/validation"
)

var tracer = otel.Tracer("doclib/internal/service")

// PDFContentType is the only accepted upload type and the download content type.
const PDFContentType = "application/pdf"

// UploadInput is one uploaded binary plus its catalog metadata.
// Size is the declared byte count, or -1 when unknown.
type UploadInput struct {
	Reader           io.Reader
	OriginalFilename string
	ContentType      string
	Size             int64
	Metadata         model.DocumentMetadata
}

// Download is an open stream of a document's file. The caller must close Body.
type Download struct {
	Document *model.Document
	Body     io.ReadCloser
	Size     int64
	Filename string
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload validates, stores the file, then records the document. If recording fails the file is deleted.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// List returns every document.
	List(ctx context.Context) ([]model.Document, error)

	// Search filters documents by free text and optional exact category.
	Search(ctx context.Context, query string, category *string) ([]model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Download opens the document's stored file.
	Download(ctx context.Context, id string) (*Download, error)

	// Delete removes the stored file (tolerating its absence), then the record.
	Delete(ctx context.Context, id string) error

	// OpenFile opens a stored file by its generated name without any record lookup.
	OpenFile(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

// DocumentOption customizes the document service.
type DocumentOption func(*documentService)

// WithMaxUploadBytes sets the upload size limit.
func WithMaxUploadBytes(n int64) DocumentOption {
	return func(s *documentService) { s.maxBytes = n }
}

// WithLogger sets the service logger.
func WithLogger(log logrus.FieldLogger) DocumentOption {
	return func(s *documentService) { s.log = log }
}

// WithFileNamer overrides generation of stored file names.
func WithFileNamer(fn func(originalFilename string) string) DocumentOption {
	return func(s *documentService) { s.fileName = fn }
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	log      logrus.FieldLogger
	maxBytes int64
	fileName func(string) string
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, opts ...DocumentOption) DocumentService {
	s := &documentService{
		store:    store,
		repo:     repo,
		log:      logging.Discard(),
		maxBytes: config.DefaultMaxUploadBytes,
		fileName: GenerateFileName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Upload", trace.WithAttributes(
		attribute.Int64("upload.declared_size", in.Size),
		attribute.String("upload.content_type", in.ContentType),
	))
	defer span.End()

	doc, err := s.upload(ctx, in)
	if err != nil {
		endWithError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("document.id", doc.ID), attribute.Int64("document.file_size", doc.FileSize))
	return doc, nil
}

func (s *documentService) upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	meta := normalizeMetadata(in.Metadata)
	if details := validation.Struct(meta); details != nil {
		return nil, &ValidationError{Details: details}
	}
	if in.Reader == nil {
		return nil, NewValidationError("file", "is required")
	}
	if !isPDF(in.ContentType) {
		return nil, ErrUnsupportedFileType
	}
	if in.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	key := s.fileName(in.OriginalFilename)
	log := s.log.WithFields(logrus.Fields{"file_name": key, "declared_size": in.Size})

	info, err := s.store.Put(ctx, key, &sizeLimitReader{r: in.Reader, remaining: s.maxBytes}, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: PDFContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			return nil, ErrFileTooLarge
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.WithError(err).Info("upload aborted")
			return nil, fmt.Errorf("upload aborted: %w", err)
		}
		log.WithError(err).Error("storing upload failed")
		return nil, fmt.Errorf("%w: upload to storage: %v", ErrStorageIO, err)
	}

	// The client may have gone away while the file was committed; no record for it then.
	if err := ctx.Err(); err != nil {
		return nil, s.rollback(ctx, key, fmt.Errorf("upload aborted: %w", err))
	}

	doc, err := s.repo.Create(ctx, meta, model.FileRef{Name: key, Path: info.Location, Size: info.Size})
	if err != nil {
		return nil, s.rollback(ctx, key, fmt.Errorf("save document record: %w", err))
	}

	log.WithFields(logrus.Fields{"document_id": doc.ID, "size": doc.FileSize}).Info("document uploaded")
	return doc, nil
}

// rollback deletes a stored file whose record could not be committed.
func (s *documentService) rollback(ctx context.Context, key string, cause error) error {
	log := s.log.WithField("file_name", key)
	if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil && !errors.Is(delErr, storage.ErrObjectNotFound) {
		log.WithError(delErr).Error("rollback delete failed; stored file is orphaned")
		return fmt.Errorf("%w; rollback delete failed: %v", cause, delErr)
	}
	log.WithError(cause).Warn("upload rolled back")
	return cause
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.List(ctx)
}

func (s *documentService) Search(ctx context.Context, query string, category *string) ([]model.Document, error) {
	if query == "" && category == nil {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, repository.SearchQuery{Text: query, Category: category})
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, id string) (*Download, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Download", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	doc, err := s.Get(ctx, id)
	if err != nil {
		endWithError(span, err)
		return nil, err
	}

	body, info, err := s.store.Get(ctx, doc.FileName)
	if err != nil {
		log := s.log.WithFields(logrus.Fields{"document_id": doc.ID, "file_name": doc.FileName})
		if errors.Is(err, storage.ErrObjectNotFound) {
			log.Error("document record has no stored file")
			err = fmt.Errorf("%w: document %s", ErrFileMissing, doc.ID)
		} else {
			log.WithError(err).Error("opening stored file failed")
			err = fmt.Errorf("%w: open %s: %v", ErrStorageIO, doc.FileName, err)
		}
		endWithError(span, err)
		return nil, err
	}

	return &Download{
		Document: doc,
		Body:     body,
		Size:     info.Size,
		Filename: AttachmentName(doc.Title),
	}, nil
}

// Delete removes a document's file, then its record. A file that is already gone is not an error.
func (s *documentService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DocumentService.Delete", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	if err := s.delete(ctx, id); err != nil {
		endWithError(span, err)
		return err
	}
	return nil
}

func (s *documentService) delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	log := s.log.WithFields(logrus.Fields{"document_id": doc.ID, "file_name": doc.FileName})
	if err := s.store.Delete(ctx, doc.FileName); err != nil {
		if !errors.Is(err, storage.ErrObjectNotFound) {
			log.WithError(err).Error("deleting stored file failed")
			return fmt.Errorf("%w: delete %s: %v", ErrStorageIO, doc.FileName, err)
		}
		log.Warn("stored file already missing")
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	log.Info("document deleted")
	return nil
}

func (s *documentService) OpenFile(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if storage.ValidateKey(name) != nil {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}
	body, info, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("%w: open %s: %v", ErrStorageIO, name, err)
	}
	return body, info, nil
}

// endWithError marks span failed. Client-side errors are recorded without failing the span.
func endWithError(span trace.Span, err error) {
	span.RecordError(err)
	if errors.Is(err, ErrStorageIO) || errors.Is(err, ErrFileMissing) {
		span.SetStatus(codes.Error, err.Error())
	}
}

// GenerateFileName returns a collision-free storage name: a ULID (timestamp + randomness)
// plus the original extension. The client file name is otherwise ignored.
func GenerateFileName(originalFilename string) string {
	return ulid.Make().String() + safeExt(originalFilename)
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(strings.ReplaceAll(name, `\`, "/"))))
	if len(ext) < 2 || len(ext) > 10 {
		return ".pdf"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".pdf"
		}
	}
	return ext
}

// AttachmentName derives the download file name from a document title.
func AttachmentName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == PDFContentType
}

func normalizeMetadata(m model.DocumentMetadata) model.DocumentMetadata {
	m.Title = strings.TrimSpace(m.Title)
	m.Author = strings.TrimSpace(m.Author)
	m.Category = strings.TrimSpace(m.Category)
	m.Description = trimOptional(m.Description)
	m.Keywords = trimOptional(m.Keywords)
	m.UploadedBy = trimOptional(m.UploadedBy)
	return m
}

// trimOptional trims s and maps blank values to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// sizeLimitReader fails with ErrFileTooLarge once more than remaining bytes are read,
// so a body larger than its declared size still cannot exceed the limit.
type sizeLimitReader struct {
	r         io.Reader
	remaining int64
}

func (l *sizeLimitReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrFileTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return 0, ErrFileTooLarge
	}
	return n, err
}
