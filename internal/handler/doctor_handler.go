package handler

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type RegisterDoctorRequest struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Password        string          `json:"password" binding:"required,min=6"`
	Mobile          string          `json:"mobile"`
	Specializations []string        `json:"specializations"`
	Shift           models.Shift    `json:"shift"`
	Degrees         []models.Degree `json:"degrees"`
	VisitingFee     float64         `json:"visitingFee" binding:"gte=0"`
	Hospitals       []string        `json:"hospitals"`
}

type UpdateDoctorRequest struct {
	Name            *string          `json:"name"`
	Mobile          *string          `json:"mobile"`
	Specializations *[]string        `json:"specializations"`
	Shift           *models.Shift    `json:"shift"`
	Degrees         *[]models.Degree `json:"degrees"`
	VisitingFee     *float64         `json:"visitingFee" binding:"omitempty,gte=0"`
	Hospitals       *[]string        `json:"hospitals"`
}

// Register creates a new doctor
func (h *DoctorHandler) Register(c *gin.Context) {
	var req RegisterDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := &models.Doctor{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Mobile:          req.Mobile,
		Specializations: req.Specializations,
		Shift:           req.Shift,
		Degrees:         req.Degrees,
		VisitingFee:     req.VisitingFee,
		Hospitals:       req.Hospitals,
	}

	if err := h.doctorService.Register(doctor); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Doctor registered successfully", doctor)
}

// Login verifies doctor credentials and returns the profile
func (h *DoctorHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.doctorService.Login(req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// List retrieves all doctors
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, doctors, len(doctors))
}

// Update applies a partial update to a doctor
func (h *DoctorHandler) Update(c *gin.Context) {
	var req UpdateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.doctorService.Update(c.Param("id"), service.DoctorPatch{
		Name:            req.Name,
		Mobile:          req.Mobile,
		Specializations: req.Specializations,
		Shift:           req.Shift,
		Degrees:         req.Degrees,
		VisitingFee:     req.VisitingFee,
		Hospitals:       req.Hospitals,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// Delete removes a doctor
func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.doctorService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
