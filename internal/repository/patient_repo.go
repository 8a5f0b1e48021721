package repository

import (
	"errors"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create persists a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindByID retrieves a patient by id
func (r *PatientRepository) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("patient %s not found", id)
		}
		return nil, err
	}
	return &patient, nil
}

// FindByEmail retrieves a patient by its unique email, nil if absent
func (r *PatientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindAll retrieves all patients, newest first
func (r *PatientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("created_at DESC").Find(&patients).Error
	return patients, err
}

// Update persists field changes on an existing patient
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes a patient by id
func (r *PatientRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Patient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("patient %s not found", id)
	}
	return nil
}
