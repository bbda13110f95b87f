// Package repository holds the gorm-backed data access layer. Every
// application query is scoped by owner id; there is no unscoped access path.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/vocab"
)

// ApplicationFilter narrows a list query. Nil fields are ignored; Start and
// End are inclusive.
type ApplicationFilter struct {
	Status *vocab.Status
	Start  *models.Date
	End    *models.Date
}

// ApplicationRepository is the persistence boundary for application records.
// The service layer depends on this interface so ownership and normalization
// rules can be tested without Postgres.
type ApplicationRepository interface {
	ListByOwner(ctx context.Context, ownerID string, filter ApplicationFilter) ([]models.Application, error)
	Create(ctx context.Context, app *models.Application) error
	// Update overwrites the mutable fields of the record matching id AND
	// ownerID and returns the number of rows affected. Zero rows means the
	// record does not exist or belongs to someone else.
	Update(ctx context.Context, app *models.Application) (int64, error)
	FindByOwner(ctx context.Context, ownerID, id string) (*models.Application, error)
	// Delete removes the record matching id AND ownerID. Deleting a missing
	// or non-owned record is a no-op, not an error.
	Delete(ctx context.Context, ownerID, id string) error
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) ListByOwner(ctx context.Context, ownerID string, filter ApplicationFilter) ([]models.Application, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Start != nil {
		q = q.Where("applied_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("applied_at <= ?", *filter.End)
	}
	var apps []models.Application
	if err := q.Order("applied_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *gormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *gormApplicationRepository) Update(ctx context.Context, app *models.Application) (int64, error) {
	// Full-payload overwrite; the map form keeps zero values like cleared
	// notes from being skipped.
	res := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND owner_id = ?", app.ID, app.OwnerID).
		Updates(map[string]any{
			"company":    app.Company,
			"position":   app.Position,
			"applied_at": app.AppliedAt,
			"status":     app.Status,
			"source":     app.Source,
			"notes":      app.Notes,
		})
	return res.RowsAffected, res.Error
}

func (r *gormApplicationRepository) FindByOwner(ctx context.Context, ownerID, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Application{}).Error
}
