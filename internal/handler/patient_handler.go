package handler

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type DiseaseRequest struct {
	Name          string `json:"name" binding:"required"`
	DiagnosedDate string `json:"diagnosedDate"`
	Status        string `json:"status" binding:"omitempty,oneof=Active Resolved Chronic"`
}

type RegisterPatientRequest struct {
	Name        string           `json:"name" binding:"required"`
	Email       string           `json:"email" binding:"required,email"`
	Password    string           `json:"password" binding:"required,min=6"`
	Mobile      string           `json:"mobile"`
	Gender      string           `json:"gender"`
	DateOfBirth string           `json:"dateOfBirth"`
	BloodGroup  string           `json:"bloodGroup"`
	Address     string           `json:"address"`
	Diseases    []DiseaseRequest `json:"diseases"`
}

type UpdatePatientRequest struct {
	Name        *string           `json:"name"`
	Mobile      *string           `json:"mobile"`
	Gender      *string           `json:"gender"`
	DateOfBirth *string           `json:"dateOfBirth"`
	BloodGroup  *string           `json:"bloodGroup"`
	Address     *string           `json:"address"`
	Diseases    *[]DiseaseRequest `json:"diseases"`
}

func diseasesFromRequest(reqs []DiseaseRequest) []models.Disease {
	diseases := make([]models.Disease, 0, len(reqs))
	for _, d := range reqs {
		status := models.DiseaseStatus(d.Status)
		if d.Status == "" {
			status = models.DiseaseActive
		}
		diseases = append(diseases, models.Disease{
			Name:          d.Name,
			DiagnosedDate: d.DiagnosedDate,
			Status:        status,
		})
	}
	return diseases
}

// Register creates a new patient
func (h *PatientHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := &models.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Mobile:      req.Mobile,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
		Diseases:    diseasesFromRequest(req.Diseases),
	}

	if err := h.patientService.Register(patient); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Patient registered successfully", patient)
}

// Login verifies patient credentials and returns the profile
func (h *PatientHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.patientService.Login(req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// List retrieves all patients
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, patients, len(patients))
}

// Update applies a partial update to a patient
func (h *PatientHandler) Update(c *gin.Context) {
	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patch := service.PatientPatch{
		Name:        req.Name,
		Mobile:      req.Mobile,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
	}
	if req.Diseases != nil {
		diseases := diseasesFromRequest(*req.Diseases)
		patch.Diseases = &diseases
	}

	patient, err := h.patientService.Update(c.Param("id"), patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// Delete removes a patient
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.patientService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
