package game

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date that marshals as YYYY-MM-DD. It wraps
// time.Time so pgx can scan Postgres date columns into it directly.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	t, err := time.Parse(`"2006-01-02"`, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so date columns load into Date values.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// ParseDate parses a YYYY-MM-DD string, returning nil when it does not parse.
func ParseDate(s string) *Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &Date{Time: t}
}
