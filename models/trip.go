package models

import (
	"strconv"
	"strings"
	"time"
)

// Field is a named column of the bikeshare trip schema.
type Field string

const (
	FieldStartTime    Field = "Start Time"
	FieldEndTime      Field = "End Time"
	FieldTripDuration Field = "Trip Duration"
	FieldStartStation Field = "Start Station"
	FieldEndStation   Field = "End Station"
	FieldUserType     Field = "User Type"
	FieldGender       Field = "Gender"
	FieldBirthYear    Field = "Birth Year"
)

// AllFields lists every known field in display order.
var AllFields = []Field{
	FieldStartTime,
	FieldEndTime,
	FieldTripDuration,
	FieldStartStation,
	FieldEndStation,
	FieldUserType,
	FieldGender,
	FieldBirthYear,
}

// Column returns the SQL column name of the field, e.g. "Start Time" → "start_time".
func (f Field) Column() string {
	return strings.ReplaceAll(strings.ToLower(string(f)), " ", "_")
}

// ParseField matches a CSV header or SQL column name against the known fields.
func ParseField(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, f := range AllFields {
		if strings.EqualFold(name, string(f)) || strings.EqualFold(name, f.Column()) {
			return f, true
		}
	}
	return "", false
}

// RawTrip holds one unparsed row exactly as read from a trip source.
type RawTrip struct {
	StartTime    string `csv:"Start Time" db:"start_time"`
	EndTime      string `csv:"End Time" db:"end_time"`
	TripDuration string `csv:"Trip Duration" db:"trip_duration"`
	StartStation string `csv:"Start Station" db:"start_station"`
	EndStation   string `csv:"End Station" db:"end_station"`
	UserType     string `csv:"User Type" db:"user_type"`
	Gender       string `csv:"Gender" db:"gender"`
	BirthYear    string `csv:"Birth Year" db:"birth_year"`
}

// RawTripTable is the result of reading one city's source: the rows plus the
// fields the source actually carries.
type RawTripTable struct {
	Fields []Field
	Rows   []*RawTrip
}

// Trip is a parsed bikeshare trip. EndTime is zero and BirthYear is 0 when
// unknown; Duration only counts when DurationKnown is set.
type Trip struct {
	Row           int
	StartTime     time.Time
	EndTime       time.Time
	Duration      float64
	DurationKnown bool
	StartStation  string
	EndStation    string
	UserType      string
	Gender        string
	BirthYear     int
	Month         time.Month
	DayOfWeek     time.Weekday
}

func (t *Trip) Hour() int {
	return t.StartTime.Hour()
}

// Route joins both stations, e.g. "Canal St to Clark St".
func (t *Trip) Route() string {
	return t.StartStation + " to " + t.EndStation
}

// Value renders a single field of the trip for display.
func (t *Trip) Value(f Field) string {
	switch f {
	case FieldStartTime:
		return t.StartTime.Format(time.DateTime)
	case FieldEndTime:
		if t.EndTime.IsZero() {
			return ""
		}
		return t.EndTime.Format(time.DateTime)
	case FieldTripDuration:
		if !t.DurationKnown {
			return ""
		}
		return strconv.FormatFloat(t.Duration, 'f', -1, 64)
	case FieldStartStation:
		return t.StartStation
	case FieldEndStation:
		return t.EndStation
	case FieldUserType:
		return t.UserType
	case FieldGender:
		return t.Gender
	case FieldBirthYear:
		if t.BirthYear == 0 {
			return ""
		}
		return strconv.Itoa(t.BirthYear)
	}
	return ""
}
