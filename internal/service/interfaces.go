package service

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
)

// Store interfaces abstract the repositories so services can be exercised
// against mocks. internal/repository provides the GORM-backed
// implementations.

type HospitalStore interface {
	Create(hospital *models.Hospital) error
	FindByID(id string) (*models.Hospital, error)
	FindByEmail(email string) (*models.Hospital, error)
	FindByRegistrationID(registrationID string) (*models.Hospital, error)
	FindAll() ([]models.Hospital, error)
	Update(hospital *models.Hospital) error
	Delete(id string) error
	FindWithinRadius(lat, lng, radiusKm float64, equipment string) ([]models.Hospital, error)
}

type DoctorStore interface {
	Create(doctor *models.Doctor) error
	FindByID(id string) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	FindAll() ([]models.Doctor, error)
	Update(doctor *models.Doctor) error
	Delete(id string) error
}

type PatientStore interface {
	Create(patient *models.Patient) error
	FindByID(id string) (*models.Patient, error)
	FindByEmail(email string) (*models.Patient, error)
	FindAll() ([]models.Patient, error)
	Update(patient *models.Patient) error
	Delete(id string) error
}

type ConnectionStore interface {
	Create(connection *models.Connection) error
	FindByID(id string) (*models.Connection, error)
	Find(filters repository.ConnectionFilters) ([]models.Connection, error)
	Update(connection *models.Connection) error
	Delete(id string) error
	CountActiveByDoctor(doctorID string) (int64, error)
	CountActiveByPatient(patientID string) (int64, error)
	CountActiveByHospital(hospitalID string) (int64, error)
}

type TransferStore interface {
	Create(transfer *models.EquipmentTransfer) error
	FindByID(id string) (*models.EquipmentTransfer, error)
	Find(filters repository.TransferFilters) ([]models.EquipmentTransfer, error)
	Update(transfer *models.EquipmentTransfer) error
	Delete(id string) error
	Approve(transfer *models.EquipmentTransfer, source *models.HospitalEquipment, destination *models.HospitalEquipment) error
	CountActiveByHospital(hospitalID string) (int64, error)
}

type AuditStore interface {
	CreateAuditLog(actorType string, actorID *string, action string, details string) error
}
