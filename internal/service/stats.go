package service

import (
	"context"
	"math/rand"

	"github.com/dustin/go-humanize"

	"doclib/internal/model"
	"doclib/internal/repository"
)

// DownloadFigures supplies the dashboard's download figure.
type DownloadFigures interface {
	TodayDownloads(ctx context.Context) int
}

// DemoDownloads is a placeholder DownloadFigures: downloads are not counted anywhere,
// so it reports a random value in the 100-599 range the dashboard was designed around.
type DemoDownloads struct{}

func (DemoDownloads) TodayDownloads(context.Context) int {
	return rand.Intn(500) + 100
}

// StatsService aggregates the admin dashboard summary.
type StatsService interface {
	Snapshot(ctx context.Context) (*model.Stats, error)
}

type statsService struct {
	users     repository.UserRepository
	docs      repository.DocumentRepository
	downloads DownloadFigures
}

// NewStatsService constructs a StatsService. A nil figures source uses DemoDownloads.
func NewStatsService(users repository.UserRepository, docs repository.DocumentRepository, downloads DownloadFigures) StatsService {
	if downloads == nil {
		downloads = DemoDownloads{}
	}
	return &statsService{users: users, docs: docs, downloads: downloads}
}

// Snapshot counts users and documents; Storage is the total stored document size.
func (s *statsService) Snapshot(ctx context.Context) (*model.Stats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	var total uint64
	for _, d := range docs {
		if d.FileSize > 0 {
			total += uint64(d.FileSize)
		}
	}

	return &model.Stats{
		TotalUsers:     len(users),
		TotalDocuments: len(docs),
		TodayDownloads: s.downloads.TodayDownloads(ctx),
		Storage:        humanize.IBytes(total),
	}, nil
}
