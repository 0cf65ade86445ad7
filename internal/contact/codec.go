package contact

import (
	"encoding/json"
	"fmt"
)

// recordWire is the on-disk JSON shape of a Record. Phones and birthday
// round-trip through their text forms so the file stays human-readable
// and re-validation happens on load.
type recordWire struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	w := recordWire{Name: r.name}
	for _, p := range r.phones {
		w.Phones = append(w.Phones, p.value)
	}
	if r.birthday != nil {
		w.Birthday = r.birthday.String()
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. Stored values pass through
// the same validators as user input, so a hand-edited file with a bad
// phone or date fails to load rather than producing a partial record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Name == "" {
		return fmt.Errorf("contact: record with empty name")
	}

	rec := Record{name: w.Name}
	for _, number := range w.Phones {
		if err := rec.AddPhone(number); err != nil {
			return err
		}
	}
	if w.Birthday != "" {
		if err := rec.SetBirthday(w.Birthday); err != nil {
			return err
		}
	}

	*r = rec
	return nil
}
