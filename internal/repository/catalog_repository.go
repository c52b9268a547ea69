package repository

import (
	"github.com/yukikurage/life-track-api/internal/models"
	"gorm.io/gorm"
)

// GormCatalogRepository is a GORM implementation of CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindByLevel finds a track by its level
func (r *GormCatalogRepository) FindByLevel(level int) (*models.Track, error) {
	var track models.Track
	if err := r.db.Where("level = ?", level).First(&track).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

// FindByLevelWithHierarchy finds a track with its pillars and their tasks
func (r *GormCatalogRepository) FindByLevelWithHierarchy(level int) (*models.Track, error) {
	var track models.Track
	if err := r.db.
		Preload("Pillars").
		Preload("Pillars.Tasks").
		Where("level = ?", level).
		First(&track).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

// List returns all tracks ordered by level ascending
func (r *GormCatalogRepository) List() ([]models.Track, error) {
	var tracks []models.Track
	if err := r.db.Order("level ASC").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

// IsEmpty reports whether the catalog has been seeded
func (r *GormCatalogRepository) IsEmpty() (bool, error) {
	var count int64
	if err := r.db.Model(&models.Track{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
