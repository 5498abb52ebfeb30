package models

// TripSet is an ordered collection of trips for one city together with the
// fields its source provides. A TripSet is never modified after creation:
// Filter builds a new set.
type TripSet struct {
	City   string
	Trips  []*Trip
	fields map[Field]bool
}

func NewTripSet(city string, fields []Field, trips []*Trip) *TripSet {
	present := make(map[Field]bool, len(fields))
	for _, f := range fields {
		present[f] = true
	}
	return &TripSet{
		City:   city,
		Trips:  trips,
		fields: present,
	}
}

// Has reports whether the source of the set carries the given field.
func (s *TripSet) Has(f Field) bool {
	return s.fields[f]
}

// Fields returns the present fields in display order.
func (s *TripSet) Fields() []Field {
	fields := make([]Field, 0, len(s.fields))
	for _, f := range AllFields {
		if s.fields[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

func (s *TripSet) Len() int {
	return len(s.Trips)
}

// Filter returns a new set holding the trips for which keep returns true,
// preserving their order and the field capabilities of s.
func (s *TripSet) Filter(keep func(*Trip) bool) *TripSet {
	kept := make([]*Trip, 0, len(s.Trips))
	for _, t := range s.Trips {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	return &TripSet{
		City:   s.City,
		Trips:  kept,
		fields: s.fields,
	}
}
