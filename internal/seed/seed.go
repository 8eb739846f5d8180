// Package seed loads the sample catalog used for demos and local development.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"doclib/internal/model"
	"doclib/internal/service"
)

// Result counts what Run created. Existing users and documents are skipped.
type Result struct {
	UsersCreated     int
	DocumentsCreated int
}

type sampleDocument struct {
	Title, Author, Category string
	Year                    int
	Description, Keywords   string
}

func strPtr(s string) *string { return &s }

var sampleUsers = []model.NewUser{
	{FullName: "Ana García López", Email: "ana.garcia@email.com", Phone: strPtr("+1 (555) 123-4567"), Institution: strPtr("Universidad Nacional"), AreaOfInterest: strPtr("literatura")},
	{FullName: "Carlos Mendoza", Email: "carlos.mendoza@universidad.edu", Phone: strPtr("+1 (555) 234-5678"), Institution: strPtr("Instituto Tecnológico"), AreaOfInterest: strPtr("ciencias")},
	{FullName: "María Rodríguez", Email: "maria.rodriguez@gmail.com", Phone: strPtr("+1 (555) 345-6789"), Institution: strPtr("Biblioteca Central"), AreaOfInterest: strPtr("historia")},
}

var sampleDocuments = []sampleDocument{
	{"Cien años de soledad", "Gabriel García Márquez", "novela", 1967, "Una obra maestra del realismo mágico", "realismo mágico, literatura latinoamericana"},
	{"Don Quijote de La Mancha", "Miguel de Cervantes", "novela", 1605, "La historia del ingenioso hidalgo", "literatura clásica, aventuras"},
	{"El Aleph", "Jorge Luis Borges", "cuento", 1949, "Cuentos fantásticos y filosóficos", "literatura fantástica, filosofía"},
	{"La Casa de los Espíritus", "Isabel Allende", "novela", 1982, "Saga familiar en Chile", "realismo mágico, familia"},
	{"Rayuela", "Julio Cortázar", "novela", 1963, "Novela experimental revolucionaria", "literatura experimental, vanguardia"},
	{"Pedro Páramo", "Juan Rulfo", "novela", 1955, "Historia de fantasmas en Comala", "realismo mágico, México"},
	{"Ficciones", "Jorge Luis Borges", "cuento", 1944, "Cuentos laberínticos", "literatura fantástica, laberintos"},
	{"La Ciudad y los Perros", "Mario Vargas Llosa", "novela", 1963, "Novela sobre la adolescencia", "literatura peruana, juventud"},
}

// Run registers the sample users and uploads the sample documents through the
// regular upload path, each as a one-page generated PDF. Uploaders are assigned round-robin.
func Run(ctx context.Context, users service.UserService, docs service.DocumentService, log logrus.FieldLogger) (Result, error) {
	var res Result

	userIDs := make([]string, 0, len(sampleUsers))
	for _, in := range sampleUsers {
		u, err := users.Register(ctx, in)
		switch {
		case err == nil:
			res.UsersCreated++
		case errors.Is(err, service.ErrDuplicateEmail):
			if u, err = users.GetByEmail(ctx, in.Email); err != nil {
				return res, fmt.Errorf("seed user %s: %w", in.Email, err)
			}
		default:
			return res, fmt.Errorf("seed user %s: %w", in.Email, err)
		}
		userIDs = append(userIDs, u.ID)
	}

	for i, d := range sampleDocuments {
		exists, err := documentExists(ctx, docs, d)
		if err != nil {
			return res, fmt.Errorf("seed document %q: %w", d.Title, err)
		}
		if exists {
			continue
		}

		body := SamplePDF(d.Title, d.Author)
		year := d.Year
		_, err = docs.Upload(ctx, service.UploadInput{
			Reader:           bytes.NewReader(body),
			OriginalFilename: d.Title + ".pdf",
			ContentType:      service.PDFContentType,
			Size:             int64(len(body)),
			Metadata: model.DocumentMetadata{
				Title:       d.Title,
				Author:      d.Author,
				Category:    d.Category,
				Year:        &year,
				Description: strPtr(d.Description),
				Keywords:    strPtr(d.Keywords),
				UploadedBy:  strPtr(userIDs[i%len(userIDs)]),
			},
		})
		if err != nil {
			return res, fmt.Errorf("seed document %q: %w", d.Title, err)
		}
		res.DocumentsCreated++
	}

	log.WithFields(logrus.Fields{
		"users_created":     res.UsersCreated,
		"documents_created": res.DocumentsCreated,
	}).Info("sample data seeded")
	return res, nil
}

func documentExists(ctx context.Context, docs service.DocumentService, d sampleDocument) (bool, error) {
	category := d.Category
	found, err := docs.Search(ctx, d.Title, &category)
	if err != nil {
		return false, err
	}
	for _, doc := range found {
		if doc.Title == d.Title && doc.Author == d.Author {
			return true, nil
		}
	}
	return false, nil
}
