package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"hotel-frontoffice-backend/internal/model"
)

// UpsertGuestPreference saves the preferences for p.GuestEmail and reloads p from the stored row,
// so an update reports the original created_at.
func (s *gormStore) UpsertGuestPreference(ctx context.Context, p *model.GuestPreference) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guest_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"bed_type", "view_type", "floor", "accessibility_needs", "smoking",
			"balcony", "soundproof", "air_purifier", "updated_at",
		}),
	}).Create(p).Error; err != nil {
		return fmt.Errorf("failed to save preferences for %s: %w", p.GuestEmail, err)
	}

	stored, err := s.GetGuestPreference(ctx, p.GuestEmail)
	if err != nil {
		return err
	}
	*p = stored
	return nil
}

func (s *gormStore) GetGuestPreference(ctx context.Context, email string) (model.GuestPreference, error) {
	var p model.GuestPreference
	if err := s.db.WithContext(ctx).First(&p, "guest_email = ?", email).Error; err != nil {
		return model.GuestPreference{}, notFound(err)
	}
	return p, nil
}
