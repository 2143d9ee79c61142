package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestWeeklyTemplateDecodeSkipsNonStringEntries(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"id":   7,
		"name": "Dr. Salem",
		"availability": bson.M{
			"Monday":    bson.A{"09:00-09:20", int32(5), "10:00-10:20", true, nil},
			"Tuesday":   "not-an-array",
			"Wednesday": bson.A{},
		},
	})
	require.NoError(t, err)

	var doctor Doctor
	require.NoError(t, bson.Unmarshal(raw, &doctor))

	assert.Equal(t, []string{"09:00-09:20", "10:00-10:20"}, doctor.Availability["Monday"])
	assert.NotContains(t, doctor.Availability, "Tuesday")
	assert.Empty(t, doctor.Availability["Wednesday"])
}

func TestWeeklyTemplateDecodeNullAndMissing(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"id": 7, "name": "Dr. Salem", "availability": nil})
	require.NoError(t, err)

	var doctor Doctor
	require.NoError(t, bson.Unmarshal(raw, &doctor))
	assert.Nil(t, doctor.Availability)

	raw, err = bson.Marshal(bson.M{"id": 7, "name": "Dr. Salem"})
	require.NoError(t, err)

	var bare Doctor
	require.NoError(t, bson.Unmarshal(raw, &bare))
	assert.Nil(t, bare.Availability)
}

func TestWeeklyTemplateDecodeRoundTrip(t *testing.T) {
	in := Doctor{
		ID:   7,
		Name: "Dr. Salem",
		Availability: WeeklyTemplate{
			"Monday": {"09:00-09:20", "Unavailable"},
		},
	}
	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Doctor
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.Availability, out.Availability)
}
