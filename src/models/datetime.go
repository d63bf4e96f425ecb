package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"ttu/src/config"
)

// DateOnly is a calendar date backed by a Postgres DATE column. The
// pgx driver hands DATE values back as time.Time while text scans hand
// back strings, so Scan accepts both. It always renders as "2006-01-02".
type DateOnly time.Time

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(config.DATE_PARSE_FORMAT, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly(t), nil
}

func (d *DateOnly) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		return d.Scan(string(v))
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into DateOnly", value)
}

func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func (d DateOnly) String() string {
	return time.Time(d).Format(config.DATE_PARSE_FORMAT)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// TimeOfDay is a wall-clock time backed by a Postgres TIME column.
// Accepted text forms are "15:04" and "15:04:05"; it renders as "15:04".
type TimeOfDay time.Time

var timeOfDayLayouts = []string{"15:04:05", config.TIME_PARSE_FORMAT}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("cannot parse %q as a time of day", s)
}

func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDay(v)
		return nil
	case []byte:
		return t.Scan(string(v))
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into TimeOfDay", value)
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return time.Time(t).Format("15:04:05"), nil
}

func (t TimeOfDay) String() string {
	return time.Time(t).Format(config.TIME_PARSE_FORMAT)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
