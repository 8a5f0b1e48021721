package models

// DiseaseStatus enumerates the lifecycle of a diagnosed condition
type DiseaseStatus string

const (
	DiseaseActive   DiseaseStatus = "Active"
	DiseaseResolved DiseaseStatus = "Resolved"
	DiseaseChronic  DiseaseStatus = "Chronic"
)

// Disease is one entry in a patient's condition history
type Disease struct {
	Name          string        `json:"name"`
	DiagnosedDate string        `json:"diagnosedDate,omitempty"`
	Status        DiseaseStatus `json:"status"`
}

// Patient represents a registered patient
type Patient struct {
	BaseModel
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Mobile      string    `gorm:"size:20" json:"mobile,omitempty"`
	Gender      string    `gorm:"size:20" json:"gender,omitempty"`
	DateOfBirth string    `gorm:"column:date_of_birth;size:20" json:"dateOfBirth,omitempty"`
	BloodGroup  string    `gorm:"column:blood_group;size:10" json:"bloodGroup,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	Diseases    []Disease `gorm:"serializer:json" json:"diseases"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// PatientSummary is the slim shape embedded in connection payloads
type PatientSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Gender     string `json:"gender,omitempty"`
	BloodGroup string `json:"bloodGroup,omitempty"`
}

// Summary produces the embeddable shape for populated responses
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Gender:     p.Gender,
		BloodGroup: p.BloodGroup,
	}
}
