package service

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockHospitalStore is a mock implementation of HospitalStore
type MockHospitalStore struct {
	mock.Mock
}

func (m *MockHospitalStore) Create(hospital *models.Hospital) error {
	args := m.Called(hospital)
	return args.Error(0)
}

func (m *MockHospitalStore) FindByID(id string) (*models.Hospital, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) FindByEmail(email string) (*models.Hospital, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) FindByRegistrationID(registrationID string) (*models.Hospital, error) {
	args := m.Called(registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) FindAll() ([]models.Hospital, error) {
	args := m.Called()
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) Update(hospital *models.Hospital) error {
	args := m.Called(hospital)
	return args.Error(0)
}

func (m *MockHospitalStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockHospitalStore) FindWithinRadius(lat, lng, radiusKm float64, equipment string) ([]models.Hospital, error) {
	args := m.Called(lat, lng, radiusKm, equipment)
	return args.Get(0).([]models.Hospital), args.Error(1)
}

// MockDoctorStore is a mock implementation of DoctorStore
type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) Create(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) FindByID(id string) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) FindByEmail(email string) (*models.Doctor, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) FindAll() ([]models.Doctor, error) {
	args := m.Called()
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorStore) Update(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPatientStore is a mock implementation of PatientStore
type MockPatientStore struct {
	mock.Mock
}

func (m *MockPatientStore) Create(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientStore) FindByID(id string) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientStore) FindByEmail(email string) (*models.Patient, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientStore) FindAll() ([]models.Patient, error) {
	args := m.Called()
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientStore) Update(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockConnectionStore is a mock implementation of ConnectionStore
type MockConnectionStore struct {
	mock.Mock
}

func (m *MockConnectionStore) Create(connection *models.Connection) error {
	args := m.Called(connection)
	return args.Error(0)
}

func (m *MockConnectionStore) FindByID(id string) (*models.Connection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *MockConnectionStore) Find(filters repository.ConnectionFilters) ([]models.Connection, error) {
	args := m.Called(filters)
	return args.Get(0).([]models.Connection), args.Error(1)
}

func (m *MockConnectionStore) Update(connection *models.Connection) error {
	args := m.Called(connection)
	return args.Error(0)
}

func (m *MockConnectionStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockConnectionStore) CountActiveByDoctor(doctorID string) (int64, error) {
	args := m.Called(doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConnectionStore) CountActiveByPatient(patientID string) (int64, error) {
	args := m.Called(patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConnectionStore) CountActiveByHospital(hospitalID string) (int64, error) {
	args := m.Called(hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransferStore is a mock implementation of TransferStore
type MockTransferStore struct {
	mock.Mock
}

func (m *MockTransferStore) Create(transfer *models.EquipmentTransfer) error {
	args := m.Called(transfer)
	return args.Error(0)
}

func (m *MockTransferStore) FindByID(id string) (*models.EquipmentTransfer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EquipmentTransfer), args.Error(1)
}

func (m *MockTransferStore) Find(filters repository.TransferFilters) ([]models.EquipmentTransfer, error) {
	args := m.Called(filters)
	return args.Get(0).([]models.EquipmentTransfer), args.Error(1)
}

func (m *MockTransferStore) Update(transfer *models.EquipmentTransfer) error {
	args := m.Called(transfer)
	return args.Error(0)
}

func (m *MockTransferStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTransferStore) Approve(transfer *models.EquipmentTransfer, source *models.HospitalEquipment, destination *models.HospitalEquipment) error {
	args := m.Called(transfer, source, destination)
	return args.Error(0)
}

func (m *MockTransferStore) CountActiveByHospital(hospitalID string) (int64, error) {
	args := m.Called(hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditStore is a mock implementation of AuditStore
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) CreateAuditLog(actorType string, actorID *string, action string, details string) error {
	args := m.Called(actorType, actorID, action, details)
	return args.Error(0)
}
