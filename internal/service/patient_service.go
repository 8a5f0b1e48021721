package service

import (
	"fmt"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/pkg/utils"
)

type PatientService struct {
	patientRepo    PatientStore
	connectionRepo ConnectionStore
	auditRepo      AuditStore
}

func NewPatientService(patientRepo PatientStore, connectionRepo ConnectionStore, auditRepo AuditStore) *PatientService {
	return &PatientService{
		patientRepo:    patientRepo,
		connectionRepo: connectionRepo,
		auditRepo:      auditRepo,
	}
}

// PatientPatch carries the optional fields of a partial update
type PatientPatch struct {
	Name        *string
	Mobile      *string
	Gender      *string
	DateOfBirth *string
	BloodGroup  *string
	Address     *string
	Diseases    *[]models.Disease
}

// Register creates a new patient after checking email uniqueness.
// patient.Password must hold the plain text password; it is stored hashed.
func (s *PatientService) Register(patient *models.Patient) error {
	if existing, err := s.patientRepo.FindByEmail(patient.Email); err != nil {
		return err
	} else if existing != nil {
		return apperrors.Duplicate("patient with email %s already exists", patient.Email)
	}

	hashed, err := utils.HashPassword(patient.Password)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}
	patient.Password = hashed

	if err := s.patientRepo.Create(patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("patient", &patient.ID, "patient_register",
		fmt.Sprintf("Registered patient %s", patient.Name))

	return nil
}

// Login verifies patient credentials and returns the profile
func (s *PatientService) Login(email, password string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if patient == nil || !utils.ComparePassword(patient.Password, password) {
		return nil, apperrors.InvalidCredentials()
	}
	return patient, nil
}

// List retrieves all patients, newest first
func (s *PatientService) List() ([]models.Patient, error) {
	return s.patientRepo.FindAll()
}

// Update applies a partial update to an existing patient
func (s *PatientService) Update(id string, patch PatientPatch) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		patient.Name = *patch.Name
	}
	if patch.Mobile != nil {
		patient.Mobile = *patch.Mobile
	}
	if patch.Gender != nil {
		patient.Gender = *patch.Gender
	}
	if patch.DateOfBirth != nil {
		patient.DateOfBirth = *patch.DateOfBirth
	}
	if patch.BloodGroup != nil {
		patient.BloodGroup = *patch.BloodGroup
	}
	if patch.Address != nil {
		patient.Address = *patch.Address
	}
	if patch.Diseases != nil {
		patient.Diseases = *patch.Diseases
	}

	if err := s.patientRepo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient unless non-terminal connections reference them
func (s *PatientService) Delete(id string) error {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		return err
	}

	count, err := s.connectionRepo.CountActiveByPatient(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Conflict("patient %s is referenced by %d active connections", id, count)
	}

	if err := s.patientRepo.Delete(id); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("patient", &id, "patient_delete",
		fmt.Sprintf("Deleted patient %s", patient.Name))

	return nil
}
