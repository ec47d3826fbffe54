package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

func (s SubmittedItems) Value() (driver.Value, error) {
	if s == nil {
		s = SubmittedItems{}
	}
	valueString, err := json.Marshal(s)
	return string(valueString), err
}

func (s *SubmittedItems) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = SubmittedItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported submitted items value: %T", value)
	}
	items := SubmittedItems{}
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
	}
	*s = items
	return nil
}

// Messages is a list of human readable messages stored as a JSON array.
type Messages []string

func (m Messages) Value() (driver.Value, error) {
	if m == nil {
		m = Messages{}
	}
	valueString, err := json.Marshal(m)
	return string(valueString), err
}

func (m *Messages) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported messages value: %T", value)
	}
	list := Messages{}
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return err
		}
	}
	*m = list
	return nil
}
