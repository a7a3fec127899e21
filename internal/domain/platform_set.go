package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PlatformSet is an ordered set of platform ids. Insertion order is kept
// and duplicates are dropped. It is stored as a JSON array.
type PlatformSet struct {
	ids []string
}

func NewPlatformSet(ids ...string) PlatformSet {
	var s PlatformSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add appends id unless it is empty or already present.
func (s *PlatformSet) Add(id string) {
	if id == "" || s.Contains(id) {
		return
	}
	s.ids = append(s.ids, id)
}

func (s PlatformSet) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s PlatformSet) Len() int {
	return len(s.ids)
}

// Values returns a copy of the ids in order.
func (s PlatformSet) Values() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s PlatformSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *PlatformSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("decode platform set: %w", err)
	}
	*s = NewPlatformSet(ids...)
	return nil
}

// Scan implements sql.Scanner. NULL and empty values decode to an empty set.
func (s *PlatformSet) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = PlatformSet{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PlatformSet", src)
	}

	if len(data) == 0 {
		*s = PlatformSet{}
		return nil
	}
	return s.UnmarshalJSON(data)
}

// Value implements driver.Valuer.
func (s PlatformSet) Value() (driver.Value, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
