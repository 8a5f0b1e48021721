package repository

import (
	"errors"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create persists a new hospital along with its initial equipment rows
func (r *HospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// FindByID retrieves a hospital with its inventory
func (r *HospitalRepository) FindByID(id string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Preload("Equipments").Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("hospital %s not found", id)
		}
		return nil, err
	}
	return &hospital, nil
}

// FindByEmail retrieves a hospital by its unique email, nil if absent
func (r *HospitalRepository) FindByEmail(email string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("email = ?", email).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

// FindByRegistrationID retrieves a hospital by registration id, nil if absent
func (r *HospitalRepository) FindByRegistrationID(registrationID string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("registration_id = ?", registrationID).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

// FindAll retrieves all hospitals with their inventories, newest first
func (r *HospitalRepository) FindAll() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Preload("Equipments").Order("created_at DESC").Find(&hospitals).Error
	return hospitals, err
}

// Update persists field changes on an existing hospital
func (r *HospitalRepository) Update(hospital *models.Hospital) error {
	return r.db.Omit("Equipments").Save(hospital).Error
}

// Delete removes a hospital and its inventory rows
func (r *HospitalRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hospital_id = ?", id).Delete(&models.HospitalEquipment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Hospital{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("hospital %s not found", id)
		}
		return nil
	})
}

// FindWithinRadius delegates proximity search to the store's spherical
// distance function. radiusKm bounds the search; equipment, when non-empty,
// restricts results to hospitals holding at least one free unit of the
// named equipment (case-insensitive).
func (r *HospitalRepository) FindWithinRadius(lat, lng, radiusKm float64, equipment string) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	query := r.db.Preload("Equipments").
		Where("ST_Distance_Sphere(POINT(longitude, latitude), POINT(?, ?)) <= ?", lng, lat, radiusKm*1000)

	if equipment != "" {
		query = query.
			Joins("INNER JOIN hospital_equipments ON hospital_equipments.hospital_id = hospitals.id").
			Where("LOWER(hospital_equipments.name) = LOWER(?) AND hospital_equipments.free > 0", equipment).
			Distinct("hospitals.*")
	}

	err := query.Find(&hospitals).Error
	return hospitals, err
}
