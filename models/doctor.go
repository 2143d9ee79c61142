package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// WeeklyTemplate maps a weekday name ("Monday", ...) to the raw slot entries a
// doctor configured for that day. Entries are either "HH:MM-HH:MM" ranges or
// the literal "Unavailable"; the map may be missing days entirely and may
// contain malformed leftovers from earlier authoring tools, so consumers must
// filter rather than reject.
type WeeklyTemplate map[string][]string

// UnmarshalBSONValue decodes a stored template, keeping only string entries.
// Earlier authoring tools wrote numbers and nulls alongside slot strings; a
// polluted day still has to serve its good entries, so non-string array
// elements and non-array day values are dropped rather than failing the read.
func (t *WeeklyTemplate) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	if bt == bsontype.Null || bt == bsontype.Undefined {
		*t = nil
		return nil
	}
	if bt != bsontype.EmbeddedDocument {
		return fmt.Errorf("cannot decode %v into a weekly template", bt)
	}

	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return fmt.Errorf("invalid weekly template document: %w", err)
	}
	out := make(WeeklyTemplate, len(elems))
	for _, elem := range elems {
		val := elem.Value()
		if val.Type != bsontype.Array {
			continue
		}
		values, err := val.Array().Values()
		if err != nil {
			continue
		}
		slots := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.StringValueOK(); ok {
				slots = append(slots, s)
			}
		}
		out[elem.Key()] = slots
	}
	*t = out
	return nil
}

// Doctor represents a schedulable provider.
type Doctor struct {
	ID             int            `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Specialization string         `bson:"specialization" json:"specialization"`
	Governorate    string         `bson:"governorate" json:"governorate"`
	Province       string         `bson:"province,omitempty" json:"province,omitempty"`
	FacilityType   string         `bson:"facility_type,omitempty" json:"facility_type,omitempty"`
	PLC            string         `bson:"plc,omitempty" json:"plc,omitempty"` // clinic / center name
	Availability   WeeklyTemplate `bson:"availability" json:"availability"`

	// Computed from approved reviews, never persisted on the doctor document.
	AverageRating float64 `bson:"-" json:"average_rating"`
	ReviewCount   int     `bson:"-" json:"review_count"`
}
