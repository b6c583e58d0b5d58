package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/models"
)

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// ListCustomers returns customer profiles for the admin dashboard.
func (s *ProfileStore) ListCustomers(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Where("role = ?", "customer").
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
