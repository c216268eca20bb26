package reports

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	now := s.now().UTC()
	return s.repo.Stats(ctx, now.Format("2006-01-02"), now.Format("2006-01"))
}

func (s *Service) ExportRows(ctx context.Context) ([]ExportRow, error) {
	return s.repo.ExportRows(ctx)
}

// ExportFilename arma el nombre del attachment con la fecha del día.
func (s *Service) ExportFilename() string {
	return "patient-records-" + s.now().UTC().Format("2006-01-02") + ".csv"
}
