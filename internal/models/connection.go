package models

// ConnectionStatus enumerates the appointment-request lifecycle
type ConnectionStatus string

const (
	ConnectionPending   ConnectionStatus = "Pending"
	ConnectionScheduled ConnectionStatus = "Scheduled"
	ConnectionCompleted ConnectionStatus = "Completed"
	ConnectionCancelled ConnectionStatus = "Cancelled"
	ConnectionClosed    ConnectionStatus = "Closed"
)

// IsTerminal reports whether the status ends the connection lifecycle
func (s ConnectionStatus) IsTerminal() bool {
	return s == ConnectionCompleted || s == ConnectionCancelled || s == ConnectionClosed
}

// Slot is a single proposed or confirmed appointment slot
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Connection links one patient and one doctor, optionally a hospital
type Connection struct {
	BaseModel
	PatientID  string           `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID   string           `gorm:"size:36;index;not null" json:"doctorId"`
	HospitalID *string          `gorm:"size:36;index" json:"hospitalId,omitempty"`
	Status     ConnectionStatus `gorm:"size:20;default:'Pending';index" json:"status"`

	PreferredSlots []Slot `gorm:"serializer:json" json:"preferredSlots"`
	ScheduledSlot  *Slot  `gorm:"serializer:json" json:"scheduledSlot,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`

	// Relations, preloaded for populated responses
	Patient  *Patient  `gorm:"foreignKey:PatientID" json:"-"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"-"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"-"`
}

// TableName specifies the table name for Connection model
func (Connection) TableName() string {
	return "connections"
}
