package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// UnknownPayerName is shown for paid-by references that cannot be resolved.
const UnknownPayerName = "Unknown User"

// PayerRef is the "paid by" reference held on payment snapshots. It is either
// Unresolved (only an id) or Resolved (id plus display name).
//
// Stored data contains both a bare member id string and an embedded
// {"_id": ..., "name": ...} object; UnmarshalJSON accepts both so the shape
// is normalised once at the boundary.
type PayerRef struct {
	ID   *string `gorm:"column:id;size:64" json:"id"`
	Name string  `gorm:"column:name" json:"name,omitempty"`
}

// UnresolvedPayer returns a reference carrying only an id.
func UnresolvedPayer(id string) PayerRef {
	return PayerRef{ID: &id}
}

// ResolvedPayer returns a reference with id and display name.
func ResolvedPayer(id, name string) PayerRef {
	return PayerRef{ID: &id, Name: name}
}

// IsSet reports whether the reference points at anyone.
func (r PayerRef) IsSet() bool { return r.ID != nil && *r.ID != "" }

// IsResolved reports whether the reference carries a display name.
func (r PayerRef) IsResolved() bool { return r.IsSet() && r.Name != "" }

// RawID returns the referenced id or "".
func (r PayerRef) RawID() string {
	if r.ID == nil {
		return ""
	}
	return *r.ID
}

// MarshalJSON emits null for an empty reference.
func (r PayerRef) MarshalJSON() ([]byte, error) {
	if !r.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Name     string `json:"name,omitempty"`
		Resolved bool   `json:"resolved"`
	}{ID: *r.ID, Name: r.Name, Resolved: r.IsResolved()})
}

// UnmarshalJSON accepts null, a bare id string, or an object with
// "_id" or "id" and an optional "name".
func (r *PayerRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = PayerRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		if id == "" {
			*r = PayerRef{}
			return nil
		}
		*r = UnresolvedPayer(id)
		return nil
	}

	var obj struct {
		LegacyID string `json:"_id"`
		ID       string `json:"id"`
		Name     string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("paid_by must be an id or an object: %w", err)
	}
	id := obj.ID
	if id == "" {
		id = obj.LegacyID
	}
	if id == "" {
		*r = PayerRef{}
		return nil
	}
	*r = PayerRef{ID: &id, Name: obj.Name}
	return nil
}

// Payer is a resolved "who paid" identity.
type Payer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
}

// UnknownPayer is the placeholder for identifiers that cannot be resolved.
func UnknownPayer(id string) Payer {
	return Payer{ID: id, Name: UnknownPayerName}
}

// Roster maps household member ids to display names. It owns no persisted
// state and is built from the household's members plus its creator.
type Roster struct {
	HouseholdID string
	names       map[string]string
}

// NewRoster returns an empty roster for a household.
func NewRoster(householdID string) *Roster {
	return &Roster{HouseholdID: householdID, names: make(map[string]string)}
}

// Add registers a member. Later additions for the same id win.
func (r *Roster) Add(id, name string) {
	if id == "" {
		return
	}
	r.names[id] = name
}

// Len returns the number of members.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// IDs returns member ids in sorted order.
func (r *Roster) IDs() []string {
	ids := make([]string, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup resolves a member id strictly.
func (r *Roster) Lookup(id string) (Payer, bool) {
	if r == nil {
		return Payer{}, false
	}
	name, ok := r.names[id]
	if !ok {
		return Payer{}, false
	}
	return Payer{ID: id, Name: name, Resolved: true}, true
}

// Resolve maps a reference to a payer and never fails: roster members win,
// then a name embedded in the reference, then the Unknown User placeholder.
func (r *Roster) Resolve(ref PayerRef) Payer {
	if !ref.IsSet() {
		return UnknownPayer("")
	}
	if p, ok := r.Lookup(*ref.ID); ok {
		return p
	}
	if ref.Name != "" {
		return Payer{ID: *ref.ID, Name: ref.Name, Resolved: true}
	}
	return UnknownPayer(*ref.ID)
}
