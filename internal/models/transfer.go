package models

import "time"

// TransferStatus enumerates the equipment-transfer lifecycle
type TransferStatus string

const (
	TransferRequested TransferStatus = "Requested"
	TransferApproved  TransferStatus = "Approved"
	TransferRejected  TransferStatus = "Rejected"
	TransferInTransit TransferStatus = "In-Transit"
	TransferCompleted TransferStatus = "Completed"
	TransferCancelled TransferStatus = "Cancelled"
)

// IsTerminal reports whether the status ends the transfer lifecycle
func (s TransferStatus) IsTerminal() bool {
	return s == TransferRejected || s == TransferCompleted || s == TransferCancelled
}

// transferTransitions is the allowed state machine:
// Requested -> Approved | Rejected | Cancelled
// Approved  -> In-Transit | Cancelled
// In-Transit -> Completed
var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferRequested: {TransferApproved, TransferRejected, TransferCancelled},
	TransferApproved:  {TransferInTransit, TransferCancelled},
	TransferInTransit: {TransferCompleted},
}

// CanTransition reports whether moving from one status to another is allowed
func (s TransferStatus) CanTransition(to TransferStatus) bool {
	for _, next := range transferTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// EquipmentTransfer is a request to move equipment between two hospitals
type EquipmentTransfer struct {
	BaseModel
	FromHospitalID string         `gorm:"column:from_hospital_id;size:36;index;not null" json:"fromHospitalId"`
	ToHospitalID   string         `gorm:"column:to_hospital_id;size:36;index;not null" json:"toHospitalId"`
	EquipmentName  string         `gorm:"size:255;not null" json:"equipmentName"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	Status         TransferStatus `gorm:"size:20;default:'Requested';index" json:"status"`
	RequestedBy    string         `gorm:"size:255" json:"requestedBy,omitempty"`
	ApprovedBy     string         `gorm:"size:255" json:"approvedBy,omitempty"`
	Remarks        string         `gorm:"type:text" json:"remarks,omitempty"`
	TransferDate   *time.Time     `gorm:"column:transfer_date" json:"transferDate,omitempty"`

	// Relations, preloaded for populated responses
	FromHospital *Hospital `gorm:"foreignKey:FromHospitalID" json:"-"`
	ToHospital   *Hospital `gorm:"foreignKey:ToHospitalID" json:"-"`
}

// TableName specifies the table name for EquipmentTransfer model
func (EquipmentTransfer) TableName() string {
	return "equipment_transfers"
}
