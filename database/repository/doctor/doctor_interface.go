// File: database/repository/doctor/doctor_interface.go
package doctorRepo

import (
	"context"

	"clinicbook/models"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its numeric ID.
	GetByID(ctx context.Context, id int) (*models.Doctor, error)
	// GetAll retrieves all doctors ordered by name.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// GetByPLC retrieves all doctors attached to a clinic/center name.
	GetByPLC(ctx context.Context, plc string) ([]models.Doctor, error)
	// GetAvailability fetches just the weekly template for a doctor. Callers
	// must treat the result as fresh per call; it is never cached.
	GetAvailability(ctx context.Context, id int) (models.WeeklyTemplate, error)
	// Exists reports whether a doctor with the given ID is registered.
	Exists(ctx context.Context, id int) (bool, error)
	// Create inserts a new doctor record.
	Create(ctx context.Context, doctor *models.Doctor) error
	// UpdateAvailability replaces a doctor's weekly template.
	UpdateAvailability(ctx context.Context, id int, template models.WeeklyTemplate) error
}
