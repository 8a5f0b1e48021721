package service

import (
	"fmt"
	"sort"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/pkg/utils"
)

type HospitalService struct {
	hospitalRepo   HospitalStore
	connectionRepo ConnectionStore
	transferRepo   TransferStore
	auditRepo      AuditStore
}

func NewHospitalService(
	hospitalRepo HospitalStore,
	connectionRepo ConnectionStore,
	transferRepo TransferStore,
	auditRepo AuditStore,
) *HospitalService {
	return &HospitalService{
		hospitalRepo:   hospitalRepo,
		connectionRepo: connectionRepo,
		transferRepo:   transferRepo,
		auditRepo:      auditRepo,
	}
}

// HospitalPatch carries the optional fields of a partial update
type HospitalPatch struct {
	Name      *string
	Type      *models.HospitalType
	Mobile    *string
	Address   *string
	City      *string
	Latitude  *float64
	Longitude *float64
}

// NearbyHospital decorates a hospital with its computed distance string
type NearbyHospital struct {
	models.Hospital
	Distance string `json:"distance"`
}

// Register creates a new hospital after checking email and registration id
// uniqueness. hospital.Password must hold the plain text password; it is
// stored hashed.
func (s *HospitalService) Register(hospital *models.Hospital) error {
	if existing, err := s.hospitalRepo.FindByEmail(hospital.Email); err != nil {
		return err
	} else if existing != nil {
		return apperrors.Duplicate("hospital with email %s already exists", hospital.Email)
	}

	if existing, err := s.hospitalRepo.FindByRegistrationID(hospital.RegistrationID); err != nil {
		return err
	} else if existing != nil {
		return apperrors.Duplicate("hospital with registration id %s already exists", hospital.RegistrationID)
	}

	hashed, err := utils.HashPassword(hospital.Password)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}
	hospital.Password = hashed

	if err := s.hospitalRepo.Create(hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("hospital", &hospital.ID, "hospital_register",
		fmt.Sprintf("Registered hospital %s (%s)", hospital.Name, hospital.RegistrationID))

	return nil
}

// Login verifies hospital credentials and returns the profile
func (s *HospitalService) Login(email, password string) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if hospital == nil || !utils.ComparePassword(hospital.Password, password) {
		return nil, apperrors.InvalidCredentials()
	}
	return hospital, nil
}

// List retrieves all hospitals, newest first
func (s *HospitalService) List() ([]models.Hospital, error) {
	return s.hospitalRepo.FindAll()
}

// Update applies a partial update to an existing hospital
func (s *HospitalService) Update(id string, patch HospitalPatch) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		hospital.Name = *patch.Name
	}
	if patch.Type != nil {
		hospital.Type = *patch.Type
	}
	if patch.Mobile != nil {
		hospital.Mobile = *patch.Mobile
	}
	if patch.Address != nil {
		hospital.Address = *patch.Address
	}
	if patch.City != nil {
		hospital.City = *patch.City
	}
	if patch.Latitude != nil {
		hospital.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		hospital.Longitude = *patch.Longitude
	}

	if err := s.hospitalRepo.Update(hospital); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return hospital, nil
}

// Delete removes a hospital. The delete is rejected while non-terminal
// transfers or connections still reference it; terminal references do not
// block deletion.
func (s *HospitalService) Delete(id string) error {
	hospital, err := s.hospitalRepo.FindByID(id)
	if err != nil {
		return err
	}

	transferCount, err := s.transferRepo.CountActiveByHospital(id)
	if err != nil {
		return err
	}
	if transferCount > 0 {
		return apperrors.Conflict("hospital %s is referenced by %d active equipment transfers", id, transferCount)
	}

	connectionCount, err := s.connectionRepo.CountActiveByHospital(id)
	if err != nil {
		return err
	}
	if connectionCount > 0 {
		return apperrors.Conflict("hospital %s is referenced by %d active connections", id, connectionCount)
	}

	if err := s.hospitalRepo.Delete(id); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("hospital", &id, "hospital_delete",
		fmt.Sprintf("Deleted hospital %s (%s)", hospital.Name, hospital.RegistrationID))

	return nil
}

// FindNearby returns hospitals within radiusKm of the given point, closest
// first, each decorated with a "X.XX km" distance string. equipment, when
// non-empty, restricts results to hospitals holding a free unit of it.
func (s *HospitalService) FindNearby(lat, lng, radiusKm float64, equipment string) ([]NearbyHospital, error) {
	hospitals, err := s.hospitalRepo.FindWithinRadius(lat, lng, radiusKm, equipment)
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyHospital, 0, len(hospitals))
	for _, h := range hospitals {
		km := utils.Haversine(lat, lng, h.Latitude, h.Longitude)
		nearby = append(nearby, NearbyHospital{
			Hospital: h,
			Distance: utils.FormatDistance(km),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return utils.Haversine(lat, lng, nearby[i].Latitude, nearby[i].Longitude) <
			utils.Haversine(lat, lng, nearby[j].Latitude, nearby[j].Longitude)
	})

	return nearby, nil
}
