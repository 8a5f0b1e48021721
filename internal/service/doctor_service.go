package service

import (
	"fmt"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/pkg/utils"
)

type DoctorService struct {
	doctorRepo     DoctorStore
	connectionRepo ConnectionStore
	auditRepo      AuditStore
}

func NewDoctorService(doctorRepo DoctorStore, connectionRepo ConnectionStore, auditRepo AuditStore) *DoctorService {
	return &DoctorService{
		doctorRepo:     doctorRepo,
		connectionRepo: connectionRepo,
		auditRepo:      auditRepo,
	}
}

// DoctorPatch carries the optional fields of a partial update
type DoctorPatch struct {
	Name            *string
	Mobile          *string
	Specializations *[]string
	Shift           *models.Shift
	Degrees         *[]models.Degree
	VisitingFee     *float64
	Hospitals       *[]string
}

// Register creates a new doctor after checking email uniqueness.
// doctor.Password must hold the plain text password; it is stored hashed.
func (s *DoctorService) Register(doctor *models.Doctor) error {
	if existing, err := s.doctorRepo.FindByEmail(doctor.Email); err != nil {
		return err
	} else if existing != nil {
		return apperrors.Duplicate("doctor with email %s already exists", doctor.Email)
	}

	hashed, err := utils.HashPassword(doctor.Password)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}
	doctor.Password = hashed

	if err := s.doctorRepo.Create(doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("doctor", &doctor.ID, "doctor_register",
		fmt.Sprintf("Registered doctor %s", doctor.Name))

	return nil
}

// Login verifies doctor credentials and returns the profile
func (s *DoctorService) Login(email, password string) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.ComparePassword(doctor.Password, password) {
		return nil, apperrors.InvalidCredentials()
	}
	return doctor, nil
}

// List retrieves all doctors, newest first
func (s *DoctorService) List() ([]models.Doctor, error) {
	return s.doctorRepo.FindAll()
}

// Update applies a partial update to an existing doctor
func (s *DoctorService) Update(id string, patch DoctorPatch) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		doctor.Name = *patch.Name
	}
	if patch.Mobile != nil {
		doctor.Mobile = *patch.Mobile
	}
	if patch.Specializations != nil {
		doctor.Specializations = *patch.Specializations
	}
	if patch.Shift != nil {
		doctor.Shift = *patch.Shift
	}
	if patch.Degrees != nil {
		doctor.Degrees = *patch.Degrees
	}
	if patch.VisitingFee != nil {
		doctor.VisitingFee = *patch.VisitingFee
	}
	if patch.Hospitals != nil {
		doctor.Hospitals = *patch.Hospitals
	}

	if err := s.doctorRepo.Update(doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doctor, nil
}

// Delete removes a doctor unless non-terminal connections reference them
func (s *DoctorService) Delete(id string) error {
	doctor, err := s.doctorRepo.FindByID(id)
	if err != nil {
		return err
	}

	count, err := s.connectionRepo.CountActiveByDoctor(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Conflict("doctor %s is referenced by %d active connections", id, count)
	}

	if err := s.doctorRepo.Delete(id); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("doctor", &id, "doctor_delete",
		fmt.Sprintf("Deleted doctor %s", doctor.Name))

	return nil
}
