package models

// HospitalType enumerates the recognized facility categories
type HospitalType string

const (
	HospitalGovernment     HospitalType = "Government"
	HospitalPrivate        HospitalType = "Private"
	HospitalTrust          HospitalType = "Trust"
	HospitalCorporate      HospitalType = "Corporate"
	HospitalClinic         HospitalType = "Clinic"
	HospitalMultiSpecialty HospitalType = "Multi-Specialty"
	HospitalSuperSpecialty HospitalType = "Super-Specialty"
)

// Hospital represents a registered medical facility
type Hospital struct {
	BaseModel
	Name           string       `gorm:"size:255;not null" json:"name"`
	Type           HospitalType `gorm:"size:50;default:'Private'" json:"type"`
	Email          string       `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password       string       `gorm:"size:255;not null" json:"-"`
	Mobile         string       `gorm:"size:20" json:"mobile,omitempty"`
	RegistrationID string       `gorm:"column:registration_id;size:100;uniqueIndex" json:"hospitalRegistrationId"`
	Address        string       `gorm:"type:text" json:"address,omitempty"`
	City           string       `gorm:"size:100" json:"city,omitempty"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`

	// Inventory rows, mutated only by the transfer workflow
	Equipments []HospitalEquipment `gorm:"foreignKey:HospitalID" json:"equipments"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalEquipment is one named inventory counter for a hospital.
// total should equal inUse + free; the schema does not enforce it.
type HospitalEquipment struct {
	BaseModel
	HospitalID string `gorm:"size:36;index;not null" json:"-"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Total      int    `gorm:"default:0" json:"total"`
	InUse      int    `gorm:"column:in_use;default:0" json:"inUse"`
	Free       int    `gorm:"default:0" json:"free"`
}

// TableName specifies the table name for HospitalEquipment model
func (HospitalEquipment) TableName() string {
	return "hospital_equipments"
}

// HospitalSummary is the slim shape embedded in transfer and connection payloads
type HospitalSummary struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  HospitalType `json:"type"`
	Email string       `json:"email"`
	City  string       `json:"city,omitempty"`
}

// Summary produces the embeddable shape for populated responses
func (h *Hospital) Summary() HospitalSummary {
	return HospitalSummary{
		ID:    h.ID,
		Name:  h.Name,
		Type:  h.Type,
		Email: h.Email,
		City:  h.City,
	}
}
