package model

import "time"

// Document is a catalog entry backed by exactly one stored PDF.
// FileName, FilePath and FileSize are fixed at creation from the stored binary.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Keywords    *string   `json:"keywords"`
	UploadedBy  *string   `json:"uploadedBy"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath"`
	FileSize    int64     `json:"fileSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DocumentMetadata is the caller-supplied part of a Document.
// UploadedBy references a User id but is not checked against existing users.
type DocumentMetadata struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Author      string  `json:"author" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Year        *int    `json:"year" validate:"omitempty,gte=0,lte=9999"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Keywords    *string `json:"keywords" validate:"omitempty,max=500"`
	UploadedBy  *string `json:"uploadedBy" validate:"omitempty,max=100"`
}

// FileRef describes the stored binary a Document points at.
type FileRef struct {
	Name string
	Path string
	Size int64
}

// NewDocument builds a Document from its parts. ID and CreatedAt are left to the caller.
func NewDocument(meta DocumentMetadata, file FileRef) Document {
	return Document{
		Title:       meta.Title,
		Author:      meta.Author,
		Category:    meta.Category,
		Year:        cloneInt(meta.Year),
		Description: cloneString(meta.Description),
		Keywords:    cloneString(meta.Keywords),
		UploadedBy:  cloneString(meta.UploadedBy),
		FileName:    file.Name,
		FilePath:    file.Path,
		FileSize:    file.Size,
	}
}

// Clone returns a deep copy so stored records cannot be mutated through returned values.
func (d Document) Clone() Document {
	d.Year = cloneInt(d.Year)
	d.Description = cloneString(d.Description)
	d.Keywords = cloneString(d.Keywords)
	d.UploadedBy = cloneString(d.UploadedBy)
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
