// File: clinicbook/handlers/bundle.go
package handlers

import (
	doctorRepoPkg "clinicbook/database/repository/doctor"
	reviewRepoPkg "clinicbook/database/repository/review"
	"clinicbook/services/booking"
	"clinicbook/services/review"
	"clinicbook/services/schedule"
	"clinicbook/services/stats"
)

// HandlerBundle groups the endpoint handlers' dependencies into one struct.
type HandlerBundle struct {
	Engine  *schedule.Engine
	Guard   *booking.Guard
	Stats   *stats.Service
	Reviews *review.Service

	DoctorRepo doctorRepoPkg.DoctorRepository
	ReviewRepo reviewRepoPkg.ReviewRepository
}
