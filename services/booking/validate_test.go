package booking

import (
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormatTrimsFields(t *testing.T) {
	req := models.BookingRequest{
		DoctorID:     7,
		PatientName:  "  Amina K  ",
		PatientPhone: " 0912345678 ",
		Date:         "2026-03-03",
		Slot:         "09:00-09:20",
		Notes:        "  follow-up  ",
	}
	rej := validateFormat(&req, testNow)
	require.Nil(t, rej)
	assert.Equal(t, "Amina K", req.PatientName)
	assert.Equal(t, "0912345678", req.PatientPhone)
	assert.Equal(t, "follow-up", req.Notes)
}

func TestValidateFormatRejectsUnparseableStart(t *testing.T) {
	req := models.BookingRequest{
		DoctorID:     7,
		PatientName:  "Amina K",
		PatientPhone: "0912345678",
		Date:         "2026-03-03",
		Slot:         "99:99-10:00", // matches the shape, not the clock
	}
	rej := validateFormat(&req, testNow)
	require.NotNil(t, rej)
	assert.Equal(t, InvalidFormat, rej.Kind)
}

func TestValidateFormatAcceptsTodayFutureSlot(t *testing.T) {
	at := time.Date(2026, 3, 2, 8, 55, 0, 0, time.Local)
	req := models.BookingRequest{
		DoctorID:     7,
		PatientName:  "Amina K",
		PatientPhone: "0912345678",
		Date:         "2026-03-02",
		Slot:         "09:00-09:20",
	}
	assert.Nil(t, validateFormat(&req, at))
}

func TestValidateFormatRejectsZeroDoctor(t *testing.T) {
	req := models.BookingRequest{
		PatientName:  "Amina K",
		PatientPhone: "0912345678",
		Date:         "2026-03-03",
		Slot:         "09:00-09:20",
	}
	rej := validateFormat(&req, testNow)
	require.NotNil(t, rej)
	assert.Equal(t, InvalidFormat, rej.Kind)
}
