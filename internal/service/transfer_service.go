package service

import (
	"fmt"
	"strings"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
)

type TransferService struct {
	transferRepo TransferStore
	hospitalRepo HospitalStore
	auditRepo    AuditStore
}

func NewTransferService(transferRepo TransferStore, hospitalRepo HospitalStore, auditRepo AuditStore) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// TransferPatch carries the optional fields of a partial update
type TransferPatch struct {
	Status     *models.TransferStatus
	ApprovedBy *string
	Remarks    *string
}

// TransferView is the populated response shape of a transfer
type TransferView struct {
	models.EquipmentTransfer
	FromHospital *models.HospitalSummary `json:"fromHospital,omitempty"`
	ToHospital   *models.HospitalSummary `json:"toHospital,omitempty"`
}

// NewTransferView builds the populated shape from preloaded relations
func NewTransferView(t models.EquipmentTransfer) TransferView {
	view := TransferView{EquipmentTransfer: t}
	if t.FromHospital != nil {
		s := t.FromHospital.Summary()
		view.FromHospital = &s
	}
	if t.ToHospital != nil {
		s := t.ToHospital.Summary()
		view.ToHospital = &s
	}
	return view
}

// locateEquipment finds the inventory row whose name matches
// case-insensitively, or nil
func locateEquipment(items []models.HospitalEquipment, name string) *models.HospitalEquipment {
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return &items[i]
		}
	}
	return nil
}

// Create validates both hospitals and the source inventory, then persists a
// transfer in Requested status, returning it populated
func (s *TransferService) Create(transfer *models.EquipmentTransfer) (*TransferView, error) {
	if transfer.FromHospitalID == transfer.ToHospitalID {
		return nil, apperrors.Validation("source and destination hospital must differ")
	}

	source, err := s.hospitalRepo.FindByID(transfer.FromHospitalID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("source hospital %s does not exist", transfer.FromHospitalID)
		}
		return nil, err
	}
	if _, err := s.hospitalRepo.FindByID(transfer.ToHospitalID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("destination hospital %s does not exist", transfer.ToHospitalID)
		}
		return nil, err
	}

	item := locateEquipment(source.Equipments, transfer.EquipmentName)
	if item == nil {
		return nil, apperrors.InsufficientInventory(
			"hospital %s has no equipment named %q", source.Name, transfer.EquipmentName)
	}
	if item.Free < transfer.Quantity {
		return nil, apperrors.InsufficientInventory(
			"hospital %s has only %d free %s, %d requested", source.Name, item.Free, item.Name, transfer.Quantity)
	}

	if transfer.Status == "" {
		transfer.Status = models.TransferRequested
	}

	if err := s.transferRepo.Create(transfer); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return s.findView(transfer.ID)
}

// List retrieves transfers matching the filters, newest first
func (s *TransferService) List(filters repository.TransferFilters) ([]TransferView, error) {
	transfers, err := s.transferRepo.Find(filters)
	if err != nil {
		return nil, err
	}

	views := make([]TransferView, 0, len(transfers))
	for _, t := range transfers {
		views = append(views, NewTransferView(t))
	}
	return views, nil
}

// Update applies a partial update. A transition to Approved runs the
// inventory adjustment; every other transition is a plain field update with
// no inventory side effect. Transitions outside the state machine fail with
// a validation error.
func (s *TransferService) Update(id string, patch TransferPatch) (*TransferView, error) {
	transfer, err := s.transferRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.ApprovedBy != nil {
		transfer.ApprovedBy = *patch.ApprovedBy
	}
	if patch.Remarks != nil {
		transfer.Remarks = *patch.Remarks
	}

	if patch.Status != nil && *patch.Status != transfer.Status {
		if !transfer.Status.CanTransition(*patch.Status) {
			return nil, apperrors.Validation(
				"cannot transition transfer from %s to %s", transfer.Status, *patch.Status)
		}

		if *patch.Status == models.TransferApproved {
			if err := s.approve(transfer); err != nil {
				return nil, err
			}
			return s.findView(id)
		}

		transfer.Status = *patch.Status
	}

	if err := s.transferRepo.Update(transfer); err != nil {
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}

	return s.findView(id)
}

// approve re-reads both hospitals fresh and hands the located inventory rows
// to the store for the atomic adjustment
func (s *TransferService) approve(transfer *models.EquipmentTransfer) error {
	source, err := s.hospitalRepo.FindByID(transfer.FromHospitalID)
	if err != nil {
		return err
	}
	destination, err := s.hospitalRepo.FindByID(transfer.ToHospitalID)
	if err != nil {
		return err
	}

	sourceItem := locateEquipment(source.Equipments, transfer.EquipmentName)
	if sourceItem == nil {
		return apperrors.InsufficientInventory(
			"hospital %s has no equipment named %q", source.Name, transfer.EquipmentName)
	}
	if sourceItem.Free < transfer.Quantity {
		return apperrors.InsufficientInventory(
			"hospital %s has only %d free %s, %d requested", source.Name, sourceItem.Free, sourceItem.Name, transfer.Quantity)
	}

	destinationItem := locateEquipment(destination.Equipments, transfer.EquipmentName)
	if destinationItem == nil {
		destinationItem = &models.HospitalEquipment{
			HospitalID: destination.ID,
			Name:       sourceItem.Name,
			Total:      transfer.Quantity,
			InUse:      0,
			Free:       transfer.Quantity,
		}
	}

	if err := s.transferRepo.Approve(transfer, sourceItem, destinationItem); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog("hospital", &transfer.FromHospitalID, "transfer_approve",
		fmt.Sprintf("Approved transfer %s: %d x %s from %s to %s",
			transfer.ID, transfer.Quantity, transfer.EquipmentName, source.Name, destination.Name))

	return nil
}

// Delete removes a transfer unconditionally. An already-approved transfer
// leaves the inventory adjustment in place.
func (s *TransferService) Delete(id string) error {
	if err := s.transferRepo.Delete(id); err != nil {
		return err
	}
	_ = s.auditRepo.CreateAuditLog("hospital", nil, "transfer_delete",
		fmt.Sprintf("Deleted transfer %s", id))
	return nil
}

func (s *TransferService) findView(id string) (*TransferView, error) {
	transfer, err := s.transferRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view := NewTransferView(*transfer)
	return &view, nil
}
