package service

import (
	"fmt"

	"healthcare-coordination-server/internal/apperrors"
	"healthcare-coordination-server/internal/models"
	"healthcare-coordination-server/internal/repository"
)

type ConnectionService struct {
	connectionRepo ConnectionStore
	patientRepo    PatientStore
	doctorRepo     DoctorStore
	hospitalRepo   HospitalStore
	auditRepo      AuditStore
}

func NewConnectionService(
	connectionRepo ConnectionStore,
	patientRepo PatientStore,
	doctorRepo DoctorStore,
	hospitalRepo HospitalStore,
	auditRepo AuditStore,
) *ConnectionService {
	return &ConnectionService{
		connectionRepo: connectionRepo,
		patientRepo:    patientRepo,
		doctorRepo:     doctorRepo,
		hospitalRepo:   hospitalRepo,
		auditRepo:      auditRepo,
	}
}

// ConnectionPatch carries the optional fields of a partial update
type ConnectionPatch struct {
	Status         *models.ConnectionStatus
	PreferredSlots *[]models.Slot
	ScheduledSlot  *models.Slot
	Notes          *string
	HospitalID     *string
}

// ConnectionView is the populated response shape of a connection
type ConnectionView struct {
	models.Connection
	Patient  *models.PatientSummary  `json:"patient,omitempty"`
	Doctor   *models.DoctorSummary   `json:"doctor,omitempty"`
	Hospital *models.HospitalSummary `json:"hospital,omitempty"`
}

// NewConnectionView builds the populated shape from preloaded relations
func NewConnectionView(c models.Connection) ConnectionView {
	view := ConnectionView{Connection: c}
	if c.Patient != nil {
		s := c.Patient.Summary()
		view.Patient = &s
	}
	if c.Doctor != nil {
		s := c.Doctor.Summary()
		view.Doctor = &s
	}
	if c.Hospital != nil {
		s := c.Hospital.Summary()
		view.Hospital = &s
	}
	return view
}

// ApplyConnectionUpdate applies a patch to a connection. The one implicit
// transition lives here: a patch that sets scheduledSlot without an explicit
// status forces the status to Scheduled.
func ApplyConnectionUpdate(c *models.Connection, patch ConnectionPatch) {
	if patch.PreferredSlots != nil {
		c.PreferredSlots = *patch.PreferredSlots
	}
	if patch.ScheduledSlot != nil {
		c.ScheduledSlot = patch.ScheduledSlot
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.HospitalID != nil {
		c.HospitalID = patch.HospitalID
	}

	switch {
	case patch.Status != nil:
		c.Status = *patch.Status
	case patch.ScheduledSlot != nil:
		c.Status = models.ConnectionScheduled
	}
}

// Create validates the participants and persists a new connection in
// Pending status, returning it populated
func (s *ConnectionService) Create(connection *models.Connection) (*ConnectionView, error) {
	if _, err := s.patientRepo.FindByID(connection.PatientID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("patient %s does not exist", connection.PatientID)
		}
		return nil, err
	}
	if _, err := s.doctorRepo.FindByID(connection.DoctorID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("doctor %s does not exist", connection.DoctorID)
		}
		return nil, err
	}
	if connection.HospitalID != nil {
		if _, err := s.hospitalRepo.FindByID(*connection.HospitalID); err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				return nil, apperrors.Validation("hospital %s does not exist", *connection.HospitalID)
			}
			return nil, err
		}
	}

	if connection.Status == "" {
		connection.Status = models.ConnectionPending
	}

	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	return s.findView(connection.ID)
}

// List retrieves connections matching the filters, newest first
func (s *ConnectionService) List(filters repository.ConnectionFilters) ([]ConnectionView, error) {
	connections, err := s.connectionRepo.Find(filters)
	if err != nil {
		return nil, err
	}

	views := make([]ConnectionView, 0, len(connections))
	for _, c := range connections {
		views = append(views, NewConnectionView(c))
	}
	return views, nil
}

// Update applies a partial update and returns the connection populated
func (s *ConnectionService) Update(id string, patch ConnectionPatch) (*ConnectionView, error) {
	connection, err := s.connectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	ApplyConnectionUpdate(connection, patch)

	if err := s.connectionRepo.Update(connection); err != nil {
		return nil, fmt.Errorf("failed to update connection: %w", err)
	}

	return s.findView(id)
}

// Delete removes a connection by id
func (s *ConnectionService) Delete(id string) error {
	return s.connectionRepo.Delete(id)
}

func (s *ConnectionService) findView(id string) (*ConnectionView, error) {
	connection, err := s.connectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view := NewConnectionView(*connection)
	return &view, nil
}
