package models

import "fmt"

// RefID is an id the backend sends either as a string or as a number
type RefID string

// UnmarshalJSON accepts "3", 3 and null
func (r *RefID) UnmarshalJSON(data []byte) error {
	v, err := looseString(data)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*r = RefID(v)
	return nil
}

// Request links a freelancer to a project they applied to
type Request struct {
	ProjectID RefID         `json:"projectId"`
	UserID    RefID         `json:"userId"`
	Status    RequestStatus `json:"status"`
}
