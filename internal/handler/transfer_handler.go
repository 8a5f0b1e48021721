package handler

import (
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	transferService *service.TransferService
}

func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

type CreateTransferRequest struct {
	FromHospitalID string `json:"fromHospital" binding:"required"`
	ToHospitalID   string `json:"toHospital" binding:"required"`
	EquipmentName  string `json:"equipmentName" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,gte=1"`
	RequestedBy    string `json:"requestedBy"`
	Remarks        string `json:"remarks"`
}

type UpdateTransferRequest struct {
	Status     *models.TransferStatus `json:"status" binding:"omitempty,oneof=Requested Approved Rejected In-Transit Completed Cancelled"`
	ApprovedBy *string                `json:"approvedBy"`
	Remarks    *string                `json:"remarks"`
}

// Create persists a new transfer request in Requested status
func (h *TransferHandler) Create(c *gin.Context) {
	var req CreateTransferRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	transfer := &models.EquipmentTransfer{
		FromHospitalID: req.FromHospitalID,
		ToHospitalID:   req.ToHospitalID,
		EquipmentName:  req.EquipmentName,
		Quantity:       req.Quantity,
		RequestedBy:    req.RequestedBy,
		Remarks:        req.Remarks,
	}

	view, err := h.transferService.Create(transfer)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, "Equipment transfer requested successfully", view)
}

// List retrieves transfers matching the query filters, newest first
func (h *TransferHandler) List(c *gin.Context) {
	filters := repository.TransferFilters{
		Status:         c.Query("status"),
		FromHospitalID: c.Query("fromHospital"),
		ToHospitalID:   c.Query("toHospital"),
	}

	views, err := h.transferService.List(filters)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, views, len(views))
}

// Update applies a partial update; the Requested -> Approved transition runs
// the inventory adjustment
func (h *TransferHandler) Update(c *gin.Context) {
	var req UpdateTransferRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	view, err := h.transferService.Update(c.Param("id"), service.TransferPatch{
		Status:     req.Status,
		ApprovedBy: req.ApprovedBy,
		Remarks:    req.Remarks,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// Delete removes a transfer. Inventory on an already-approved transfer is
// not reversed.
func (h *TransferHandler) Delete(c *gin.Context) {
	if err := h.transferService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Equipment transfer deleted successfully")
}
