package models

// Shift describes a doctor's working window
type Shift struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// Degree is one entry in a doctor's qualification history
type Degree struct {
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Doctor represents a practicing doctor in the directory
type Doctor struct {
	BaseModel
	Name            string   `gorm:"size:255;not null" json:"name"`
	Email           string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password        string   `gorm:"size:255;not null" json:"-"`
	Mobile          string   `gorm:"size:20" json:"mobile,omitempty"`
	Specializations []string `gorm:"serializer:json" json:"specializations"`
	Shift           Shift    `gorm:"serializer:json" json:"shift"`
	Degrees         []Degree `gorm:"serializer:json" json:"degrees"`
	VisitingFee     float64  `gorm:"column:visiting_fee;default:0" json:"visitingFee"`

	// Affiliated hospital ids; unconstrained, no reciprocal validation
	Hospitals []string `gorm:"serializer:json" json:"hospitals"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// DoctorSummary is the slim shape embedded in connection payloads
type DoctorSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Specializations []string `json:"specializations,omitempty"`
	VisitingFee     float64  `json:"visitingFee"`
}

// Summary produces the embeddable shape for populated responses
func (d *Doctor) Summary() DoctorSummary {
	return DoctorSummary{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Specializations: d.Specializations,
		VisitingFee:     d.VisitingFee,
	}
}
