package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Teacher represents a tutor listed in the catalog. Records are created by the
// bulk import and read-only afterwards.
type Teacher struct {
	ID       int64    `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	About    string   `db:"about" json:"about"`
	Rating   int      `db:"rating" json:"rating"`
	Photo    string   `db:"photo" json:"photo"`
	Price    int      `db:"price" json:"price"`
	Schedule Schedule `db:"schedule" json:"schedule"`
}

// Schedule maps weekday keys to time-slot availability, stored as JSONB.
type Schedule map[string]map[string]bool

// Value marshals the schedule for storage.
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the schedule.
func (s *Schedule) Scan(src interface{}) error {
	if src == nil {
		*s = Schedule{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported schedule column type %T", src)
	}
	return json.Unmarshal(raw, s)
}
