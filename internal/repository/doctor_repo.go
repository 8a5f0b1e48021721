package repository

import (
	"errors"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create persists a new doctor
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// FindByID retrieves a doctor by id
func (r *DoctorRepository) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("doctor %s not found", id)
		}
		return nil, err
	}
	return &doctor, nil
}

// FindByEmail retrieves a doctor by its unique email, nil if absent
func (r *DoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll retrieves all doctors, newest first
func (r *DoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("created_at DESC").Find(&doctors).Error
	return doctors, err
}

// Update persists field changes on an existing doctor
func (r *DoctorRepository) Update(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// Delete removes a doctor by id
func (r *DoctorRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Doctor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("doctor %s not found", id)
	}
	return nil
}
