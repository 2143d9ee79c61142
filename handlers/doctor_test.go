package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	doctorRepo "clinicbook/database/repository/doctor"
	reviewRepo "clinicbook/database/repository/review"
	"clinicbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDoctors struct {
	doctorRepo.DoctorRepository
	all        []models.Doctor
	byPLC      []models.Doctor
	allCalls   int
	byPLCCalls int
}

func (s *countingDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	s.allCalls++
	return s.all, nil
}

func (s *countingDoctors) GetByPLC(ctx context.Context, plc string) ([]models.Doctor, error) {
	s.byPLCCalls++
	return s.byPLC, nil
}

type stubRatings struct {
	reviewRepo.ReviewRepository
}

func (s *stubRatings) RatingSummary(ctx context.Context, doctorID int) (models.RatingSummary, error) {
	return models.RatingSummary{Average: 4.5, Count: 2}, nil
}

func listDoctorsRequest(t *testing.T, hb *HandlerBundle, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	hb.ListDoctors(c)
	return w
}

func TestListDoctorsWithoutFilter(t *testing.T) {
	repo := &countingDoctors{all: []models.Doctor{{ID: 1, Name: "Dr. Salem"}}}
	hb := &HandlerBundle{DoctorRepo: repo, ReviewRepo: &stubRatings{}}

	w := listDoctorsRequest(t, hb, "/api/doctors")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.allCalls)
	assert.Equal(t, 0, repo.byPLCCalls)
}

func TestListDoctorsPLCFilterSkipsFullScan(t *testing.T) {
	repo := &countingDoctors{
		all:   []models.Doctor{{ID: 1}, {ID: 2}},
		byPLC: []models.Doctor{{ID: 2, Name: "Dr. Salem", PLC: "Al Shifa"}},
	}
	hb := &HandlerBundle{DoctorRepo: repo, ReviewRepo: &stubRatings{}}

	w := listDoctorsRequest(t, hb, "/api/doctors?plc=Al+Shifa")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, repo.allCalls, "clinic-filtered listing must not fetch the whole directory")
	assert.Equal(t, 1, repo.byPLCCalls)
	assert.Contains(t, w.Body.String(), "Al Shifa")
}
