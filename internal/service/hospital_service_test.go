package service

import (
	"testing"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHospitalService() (*HospitalService, *MockHospitalStore, *MockConnectionStore, *MockTransferStore) {
	hospitalRepo := new(MockHospitalStore)
	connectionRepo := new(MockConnectionStore)
	transferRepo := new(MockTransferStore)
	auditRepo := new(MockAuditStore)
	auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	svc := NewHospitalService(hospitalRepo, connectionRepo, transferRepo, auditRepo)
	return svc, hospitalRepo, connectionRepo, transferRepo
}

func TestHospitalRegisterHashesPassword(t *testing.T) {
	svc, hospitalRepo, _, _ := newHospitalService()
	hospitalRepo.On("FindByEmail", "city@example.com").Return(nil, nil)
	hospitalRepo.On("FindByRegistrationID", "REG-001").Return(nil, nil)

	var created *models.Hospital
	hospitalRepo.On("Create", mock.AnythingOfType("*models.Hospital")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Hospital)
		}).Return(nil)

	err := svc.Register(&models.Hospital{
		Name:           "City General",
		Email:          "city@example.com",
		Password:       "secret123",
		RegistrationID: "REG-001",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.Password)
	assert.True(t, utils.ComparePassword(created.Password, "secret123"))
}

func TestHospitalRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, hospitalRepo, _, _ := newHospitalService()
	hospitalRepo.On("FindByEmail", "city@example.com").Return(&models.Hospital{Name: "City General"}, nil)

	err := svc.Register(&models.Hospital{
		Name:           "Other",
		Email:          "city@example.com",
		Password:       "secret123",
		RegistrationID: "REG-002",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))
	hospitalRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestHospitalRegisterRejectsDuplicateRegistrationID(t *testing.T) {
	svc, hospitalRepo, _, _ := newHospitalService()
	hospitalRepo.On("FindByEmail", "other@example.com").Return(nil, nil)
	hospitalRepo.On("FindByRegistrationID", "REG-001").Return(&models.Hospital{Name: "City General"}, nil)

	err := svc.Register(&models.Hospital{
		Name:           "Other",
		Email:          "other@example.com",
		Password:       "secret123",
		RegistrationID: "REG-001",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(err))
	hospitalRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestHospitalLogin(t *testing.T) {
	svc, hospitalRepo, _, _ := newHospitalService()

	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	stored := &models.Hospital{Name: "City General", Email: "city@example.com", Password: hashed}
	stored.ID = "h-1"
	hospitalRepo.On("FindByEmail", "city@example.com").Return(stored, nil)
	hospitalRepo.On("FindByEmail", "nobody@example.com").Return(nil, nil)

	hospital, err := svc.Login("city@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "h-1", hospital.ID)

	_, err = svc.Login("city@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(err))

	_, err = svc.Login("nobody@example.com", "secret123")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(err))
}

func TestHospitalDeleteRejectedWhileReferenced(t *testing.T) {
	svc, hospitalRepo, connectionRepo, transferRepo := newHospitalService()

	stored := &models.Hospital{Name: "City General", RegistrationID: "REG-001"}
	stored.ID = "h-1"
	hospitalRepo.On("FindByID", "h-1").Return(stored, nil)
	transferRepo.On("CountActiveByHospital", "h-1").Return(int64(2), nil)

	err := svc.Delete("h-1")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	connectionRepo.AssertNotCalled(t, "CountActiveByHospital", mock.Anything)
	hospitalRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestHospitalDeleteRejectedWhileConnected(t *testing.T) {
	svc, hospitalRepo, connectionRepo, transferRepo := newHospitalService()

	stored := &models.Hospital{Name: "City General", RegistrationID: "REG-001"}
	stored.ID = "h-1"
	hospitalRepo.On("FindByID", "h-1").Return(stored, nil)
	transferRepo.On("CountActiveByHospital", "h-1").Return(int64(0), nil)
	connectionRepo.On("CountActiveByHospital", "h-1").Return(int64(1), nil)

	err := svc.Delete("h-1")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	hospitalRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestHospitalDeleteSucceedsWithoutActiveReferences(t *testing.T) {
	svc, hospitalRepo, connectionRepo, transferRepo := newHospitalService()

	stored := &models.Hospital{Name: "City General", RegistrationID: "REG-001"}
	stored.ID = "h-1"
	hospitalRepo.On("FindByID", "h-1").Return(stored, nil)
	transferRepo.On("CountActiveByHospital", "h-1").Return(int64(0), nil)
	connectionRepo.On("CountActiveByHospital", "h-1").Return(int64(0), nil)
	hospitalRepo.On("Delete", "h-1").Return(nil)

	require.NoError(t, svc.Delete("h-1"))
	hospitalRepo.AssertCalled(t, "Delete", "h-1")
}

func TestHospitalFindNearbySortsByDistance(t *testing.T) {
	svc, hospitalRepo, _, _ := newHospitalService()

	far := models.Hospital{Name: "Far", Latitude: 23.9, Longitude: 90.5}
	near := models.Hospital{Name: "Near", Latitude: 23.75, Longitude: 90.4}
	hospitalRepo.On("FindWithinRadius", 23.73, 90.39, 50.0, "").
		Return([]models.Hospital{far, near}, nil)

	nearby, err := svc.FindNearby(23.73, 90.39, 50.0, "")

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Near", nearby[0].Name)
	assert.Equal(t, "Far", nearby[1].Name)
	assert.Regexp(t, `^\d+\.\d{2} km$`, nearby[0].Distance)
}
