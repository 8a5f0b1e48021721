package handler

import (
	"strconv"

	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type EquipmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Total int    `json:"total" binding:"gte=0"`
	InUse int    `json:"inUse" binding:"gte=0"`
	Free  int    `json:"free" binding:"gte=0"`
}

type RegisterHospitalRequest struct {
	Name           string             `json:"name" binding:"required"`
	Type           string             `json:"type" binding:"omitempty,oneof=Government Private Trust Corporate Clinic Multi-Specialty Super-Specialty"`
	Email          string             `json:"email" binding:"required,email"`
	Password       string             `json:"password" binding:"required,min=6"`
	Mobile         string             `json:"mobile"`
	RegistrationID string             `json:"hospitalRegistrationId" binding:"required"`
	Address        string             `json:"address"`
	City           string             `json:"city"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Equipments     []EquipmentRequest `json:"equipments"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateHospitalRequest struct {
	Name      *string              `json:"name"`
	Type      *models.HospitalType `json:"type" binding:"omitempty,oneof=Government Private Trust Corporate Clinic Multi-Specialty Super-Specialty"`
	Mobile    *string              `json:"mobile"`
	Address   *string              `json:"address"`
	City      *string              `json:"city"`
	Latitude  *float64             `json:"latitude"`
	Longitude *float64             `json:"longitude"`
}

// Register creates a new hospital
func (h *HospitalHandler) Register(c *gin.Context) {
	var req RegisterHospitalRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	hospitalType := models.HospitalType(req.Type)
	if req.Type == "" {
		hospitalType = models.HospitalPrivate
	}

	equipments := make([]models.HospitalEquipment, 0, len(req.Equipments))
	for _, e := range req.Equipments {
		equipments = append(equipments, models.HospitalEquipment{
			Name:  e.Name,
			Total: e.Total,
			InUse: e.InUse,
			Free:  e.Free,
		})
	}

	hospital := &models.Hospital{
		Name:           req.Name,
		Type:           hospitalType,
		Email:          req.Email,
		Password:       req.Password,
		Mobile:         req.Mobile,
		RegistrationID: req.RegistrationID,
		Address:        req.Address,
		City:           req.City,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Equipments:     equipments,
	}

	if err := h.hospitalService.Register(hospital); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Hospital registered successfully", hospital)
}

// Login verifies hospital credentials and returns the profile
func (h *HospitalHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	hospital, err := h.hospitalService.Login(req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// List retrieves all hospitals
func (h *HospitalHandler) List(c *gin.Context) {
	hospitals, err := h.hospitalService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, hospitals, len(hospitals))
}

// Update applies a partial update to a hospital
func (h *HospitalHandler) Update(c *gin.Context) {
	var req UpdateHospitalRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	hospital, err := h.hospitalService.Update(c.Param("id"), service.HospitalPatch{
		Name:      req.Name,
		Type:      req.Type,
		Mobile:    req.Mobile,
		Address:   req.Address,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// Delete removes a hospital
func (h *HospitalHandler) Delete(c *gin.Context) {
	if err := h.hospitalService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// Nearby lists hospitals within a radius of a point, optionally restricted
// to those holding a free unit of the named equipment
func (h *HospitalHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.ErrorResponse(c, 400, "query parameter 'lat' must be a number")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.ErrorResponse(c, 400, "query parameter 'lng' must be a number")
		return
	}

	radius := 50.0
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			utils.ErrorResponse(c, 400, "query parameter 'radius' must be a positive number")
			return
		}
	}

	hospitals, err := h.hospitalService.FindNearby(lat, lng, radius, c.Query("equipment"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, hospitals, len(hospitals))
}
