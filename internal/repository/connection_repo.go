package repository

import (
	"errors"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

// ConnectionFilters are the optional query parameters of the list endpoint
type ConnectionFilters struct {
	Status    string
	PatientID string
	DoctorID  string
}

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create persists a new connection
func (r *ConnectionRepository) Create(connection *models.Connection) error {
	return r.db.Create(connection).Error
}

// FindByID retrieves a connection with its participants preloaded
func (r *ConnectionRepository) FindByID(id string) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.Preload("Patient").Preload("Doctor").Preload("Hospital").
		Where("id = ?", id).First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("connection %s not found", id)
		}
		return nil, err
	}
	return &connection, nil
}

// Find retrieves connections matching the filters, newest first
func (r *ConnectionRepository) Find(filters ConnectionFilters) ([]models.Connection, error) {
	query := r.db.Preload("Patient").Preload("Doctor").Preload("Hospital").
		Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.PatientID != "" {
		query = query.Where("patient_id = ?", filters.PatientID)
	}
	if filters.DoctorID != "" {
		query = query.Where("doctor_id = ?", filters.DoctorID)
	}

	var connections []models.Connection
	err := query.Find(&connections).Error
	return connections, err
}

// Update persists field changes on an existing connection
func (r *ConnectionRepository) Update(connection *models.Connection) error {
	return r.db.Save(connection).Error
}

// Delete removes a connection by id
func (r *ConnectionRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Connection{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("connection %s not found", id)
	}
	return nil
}

// CountActiveByDoctor counts non-terminal connections referencing a doctor.
// Used by the delete-referential-integrity checks.
func (r *ConnectionRepository) CountActiveByDoctor(doctorID string) (int64, error) {
	return r.countActive("doctor_id = ?", doctorID)
}

// CountActiveByPatient counts non-terminal connections referencing a patient
func (r *ConnectionRepository) CountActiveByPatient(patientID string) (int64, error) {
	return r.countActive("patient_id = ?", patientID)
}

// CountActiveByHospital counts non-terminal connections referencing a hospital
func (r *ConnectionRepository) CountActiveByHospital(hospitalID string) (int64, error) {
	return r.countActive("hospital_id = ?", hospitalID)
}

func (r *ConnectionRepository) countActive(condition, id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where(condition, id).
		Where("status IN ?", []models.ConnectionStatus{models.ConnectionPending, models.ConnectionScheduled}).
		Count(&count).Error
	return count, err
}
