package stores

import (
	"chef-catering/models/experiencetype"

	"gorm.io/gorm"
)

// ExperienceTypeStore is the GORM-backed lookup used by pricing and the
// lifecycle workflow.
type ExperienceTypeStore struct {
	DB *gorm.DB
}

func NewExperienceTypeStore(db *gorm.DB) *ExperienceTypeStore {
	return &ExperienceTypeStore{DB: db}
}

func (s *ExperienceTypeStore) FindByID(id uint) (*experiencetype.ExperienceType, error) {
	var et experiencetype.ExperienceType
	if err := s.DB.First(&et, id).Error; err != nil {
		return nil, err
	}
	return &et, nil
}
