package handler

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionService *service.ConnectionService
}

func NewConnectionHandler(connectionService *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
	}
}

type SlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CreateConnectionRequest struct {
	PatientID      string        `json:"patient" binding:"required"`
	DoctorID       string        `json:"doctor" binding:"required"`
	HospitalID     *string       `json:"hospital"`
	PreferredSlots []SlotRequest `json:"preferredSlots"`
	Notes          string        `json:"notes"`
}

type UpdateConnectionRequest struct {
	Status         *models.ConnectionStatus `json:"status" binding:"omitempty,oneof=Pending Scheduled Completed Cancelled Closed"`
	PreferredSlots *[]SlotRequest           `json:"preferredSlots"`
	ScheduledSlot  *SlotRequest             `json:"scheduledSlot"`
	Notes          *string                  `json:"notes"`
	HospitalID     *string                  `json:"hospital"`
}

func slotsFromRequest(reqs []SlotRequest) []models.Slot {
	slots := make([]models.Slot, 0, len(reqs))
	for _, s := range reqs {
		slots = append(slots, models.Slot{Date: s.Date, Time: s.Time})
	}
	return slots
}

// Create persists a new connection in Pending status
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req CreateConnectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	connection := &models.Connection{
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		HospitalID:     req.HospitalID,
		PreferredSlots: slotsFromRequest(req.PreferredSlots),
		Notes:          req.Notes,
	}

	view, err := h.connectionService.Create(connection)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Connection created successfully", view)
}

// List retrieves connections matching the query filters, newest first
func (h *ConnectionHandler) List(c *gin.Context) {
	filters := repository.ConnectionFilters{
		Status:    c.Query("status"),
		PatientID: c.Query("patient"),
		DoctorID:  c.Query("doctor"),
	}

	views, err := h.connectionService.List(filters)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, views, len(views))
}

// Update applies a partial update; setting scheduledSlot without an explicit
// status moves the connection to Scheduled
func (h *ConnectionHandler) Update(c *gin.Context) {
	var req UpdateConnectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patch := service.ConnectionPatch{
		Status:     req.Status,
		Notes:      req.Notes,
		HospitalID: req.HospitalID,
	}
	if req.PreferredSlots != nil {
		slots := slotsFromRequest(*req.PreferredSlots)
		patch.PreferredSlots = &slots
	}
	if req.ScheduledSlot != nil {
		patch.ScheduledSlot = &models.Slot{Date: req.ScheduledSlot.Date, Time: req.ScheduledSlot.Time}
	}

	view, err := h.connectionService.Update(c.Param("id"), patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// Delete removes a connection
func (h *ConnectionHandler) Delete(c *gin.Context) {
	if err := h.connectionService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Connection deleted successfully")
}
