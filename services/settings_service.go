package services

import (
	"context"
	"errors"

	"cms-backend/models"
	"cms-backend/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SettingsService manages the single site-settings document.
type SettingsService interface {
	Get(ctx context.Context) (models.SiteSettings, error)
	Put(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepo
}

func NewSettingsService(repo repository.SettingsRepo) SettingsService {
	return &settingsService{repo: repo}
}

// Get reads the sole settings document, seeding the defaults on first read.
// The seed insert is fire-and-forget: the defaults are returned either way,
// and two concurrent first reads may both insert. That race is accepted;
// both copies hold identical defaults and FindFirst keeps returning one of
// them.
func (s *settingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	stored, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			defaults := models.DefaultSiteSettings()
			if insertErr := s.repo.Insert(ctx, defaults); insertErr != nil {
				zap.L().Warn("Failed to seed default site settings", zap.Error(insertErr))
			}
			return defaults, nil
		}
		return models.SiteSettings{}, err
	}
	return stored.Doc, nil
}

// Put overwrites all fields of the existing document, or creates it verbatim
// when none exists yet. The input payload is echoed back without a re-read;
// validation is shared with the read path so the two cannot diverge.
func (s *settingsService) Put(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	stored, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if err := s.repo.Insert(ctx, settings); err != nil {
				return models.SiteSettings{}, err
			}
			return settings, nil
		}
		return models.SiteSettings{}, err
	}

	if err := s.repo.UpdateByID(ctx, stored.ID, settings); err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}
