package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jobtrackr/jobtrackr/internal/dtos"
	"github.com/jobtrackr/jobtrackr/internal/export"
	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/repository"
	"github.com/jobtrackr/jobtrackr/internal/stats"
	"github.com/jobtrackr/jobtrackr/internal/vocab"
)

// ApplicationService is the gateway every application read and write goes
// through. It owns validation, normalization, and owner scoping; nothing
// below it trusts client input.
type ApplicationService struct {
	repo repository.ApplicationRepository
	log  *logrus.Logger
}

func NewApplicationService(repo repository.ApplicationRepository, log *logrus.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, log: log}
}

// buildRecord validates and normalizes a full payload into a record. Client
// normalization is never trusted; status and source always pass through the
// vocabulary here.
func buildRecord(ownerID string, req *dtos.ApplicationRequest) (*models.Application, error) {
	company := strings.TrimSpace(req.Company)
	if company == "" {
		return nil, ValidationError("company is required")
	}
	position := strings.TrimSpace(req.Position)
	if position == "" {
		return nil, ValidationError("position is required")
	}
	appliedAt, err := models.ParseDate(req.AppliedAt)
	if err != nil {
		return nil, ValidationError("applied_at must be a valid YYYY-MM-DD date")
	}
	return &models.Application{
		OwnerID:   ownerID,
		Company:   company,
		Position:  position,
		AppliedAt: appliedAt,
		Status:    vocab.NormalizeStatus(req.Status),
		Source:    vocab.NormalizeSource(req.Source),
		Notes:     strings.TrimSpace(req.Notes),
	}, nil
}

// List returns the owner's records, newest applied first, optionally filtered
// by status and an inclusive applied-at range.
func (s *ApplicationService) List(ctx context.Context, ownerID string, q *dtos.ListApplicationsQuery) ([]models.Application, error) {
	var filter repository.ApplicationFilter
	if strings.TrimSpace(q.Status) != "" {
		status := vocab.NormalizeStatus(q.Status)
		filter.Status = &status
	}
	if strings.TrimSpace(q.Start) != "" {
		start, err := models.ParseDate(q.Start)
		if err != nil {
			return nil, ValidationError("start must be a valid YYYY-MM-DD date")
		}
		filter.Start = &start
	}
	if strings.TrimSpace(q.End) != "" {
		end, err := models.ParseDate(q.End)
		if err != nil {
			return nil, ValidationError("end must be a valid YYYY-MM-DD date")
		}
		filter.End = &end
	}

	apps, err := s.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	// Rows written before the vocabulary existed may carry stray values;
	// normalize on the way out so consumers never see them.
	for i := range apps {
		apps[i].Status = vocab.NormalizeStatus(string(apps[i].Status))
		apps[i].Source = vocab.NormalizeSource(string(apps[i].Source))
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (s *ApplicationService) Create(ctx context.Context, ownerID string, req *dtos.ApplicationRequest) (*models.Application, error) {
	app, err := buildRecord(ownerID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, app); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Error("create application failed")
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"owner_id": ownerID, "application_id": app.ID}).Info("application created")
	return app, nil
}

// Update overwrites a record with a full payload. A target that is missing or
// owned by another user affects zero rows and is reported as ErrNotFound.
func (s *ApplicationService) Update(ctx context.Context, ownerID, id string, req *dtos.ApplicationRequest) (*models.Application, error) {
	app, err := buildRecord(ownerID, req)
	if err != nil {
		return nil, err
	}
	app.ID = id
	affected, err := s.repo.Update(ctx, app)
	if err != nil {
		s.log.WithError(err).WithField("application_id", id).Error("update application failed")
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	updated, err := s.repo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete is idempotent: removing a missing or non-owned record succeeds with
// zero effect.
func (s *ApplicationService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		s.log.WithError(err).WithField("application_id", id).Error("delete application failed")
		return err
	}
	return nil
}

// Stats recomputes the aggregate view from the owner's full record set.
func (s *ApplicationService) Stats(ctx context.Context, ownerID string) (*stats.Summary, error) {
	apps, err := s.List(ctx, ownerID, &dtos.ListApplicationsQuery{})
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(apps)
	return &summary, nil
}

// Export renders the owner's records in the requested format.
func (s *ApplicationService) Export(ctx context.Context, ownerID string, format export.Format) ([]byte, error) {
	apps, err := s.List(ctx, ownerID, &dtos.ListApplicationsQuery{})
	if err != nil {
		return nil, err
	}
	return export.Serialize(apps, format)
}
