package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
	"healthcare-coordination-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConnectionStore implements service.ConnectionStore with zero-value
// behavior; hospital handler tests never reach it.
type stubConnectionStore struct{}

func (s *stubConnectionStore) Create(*models.Connection) error { return nil }
func (s *stubConnectionStore) FindByID(id string) (*models.Connection, error) {
	return nil, nil
}
func (s *stubConnectionStore) Find(repository.ConnectionFilters) ([]models.Connection, error) {
	return nil, nil
}
func (s *stubConnectionStore) Update(*models.Connection) error            { return nil }
func (s *stubConnectionStore) Delete(string) error                        { return nil }
func (s *stubConnectionStore) CountActiveByDoctor(string) (int64, error)  { return 0, nil }
func (s *stubConnectionStore) CountActiveByPatient(string) (int64, error) { return 0, nil }
func (s *stubConnectionStore) CountActiveByHospital(string) (int64, error) {
	return 0, nil
}

func newHospitalRouter(hospitals *stubHospitalStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewHospitalService(hospitals, &stubConnectionStore{}, &stubTransferStore{}, &stubAuditStore{})
	h := NewHospitalHandler(svc)

	r := gin.New()
	group := r.Group("/api/hospitals")
	group.POST("/register", h.Register)
	group.GET("/nearby", h.Nearby)
	return r
}

func TestNearbyRequiresCoordinates(t *testing.T) {
	r := newHospitalRouter(&stubHospitalStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hospitals/nearby?lng=90.4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "lat")
}

func TestNearbyRejectsNonPositiveRadius(t *testing.T) {
	r := newHospitalRouter(&stubHospitalStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hospitals/nearby?lat=23.7&lng=90.4&radius=-5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "radius")
}

func TestNearbyPassesFiltersAndDefaultsRadius(t *testing.T) {
	var gotLat, gotLng, gotRadius float64
	var gotEquipment string
	hospitals := &stubHospitalStore{}
	hospitals.findWithinRadiusFn = func(lat, lng, radiusKm float64, equipment string) ([]models.Hospital, error) {
		gotLat, gotLng, gotRadius, gotEquipment = lat, lng, radiusKm, equipment
		return nil, nil
	}
	r := newHospitalRouter(hospitals)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/hospitals/nearby?lat=23.7&lng=90.4&equipment=Ventilator", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 23.7, gotLat)
	assert.Equal(t, 90.4, gotLng)
	assert.Equal(t, 50.0, gotRadius)
	assert.Equal(t, "Ventilator", gotEquipment)
}

func TestRegisterHospitalValidatesType(t *testing.T) {
	r := newHospitalRouter(&stubHospitalStore{})

	body := `{
		"name": "City General",
		"type": "Boutique",
		"email": "city@example.com",
		"password": "secret123",
		"hospitalRegistrationId": "REG-001"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hospitals/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestRegisterHospitalPersistsEquipmentRows(t *testing.T) {
	var created *models.Hospital
	hospitals := &stubHospitalStore{
		createFn: func(h *models.Hospital) error {
			created = h
			return nil
		},
	}
	r := newHospitalRouter(hospitals)

	body := `{
		"name": "City General",
		"email": "city@example.com",
		"password": "secret123",
		"hospitalRegistrationId": "REG-001",
		"equipments": [{"name": "Ventilator", "total": 10, "inUse": 4, "free": 6}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hospitals/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, models.HospitalPrivate, created.Type)
	require.Len(t, created.Equipments, 1)
	assert.Equal(t, "Ventilator", created.Equipments[0].Name)
	assert.Equal(t, 6, created.Equipments[0].Free)
}
