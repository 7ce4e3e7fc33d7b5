package domain

import (
	"strings"
	"time"
)

// RegistrationStatusConfirmed is the only status the current surface writes.
const RegistrationStatusConfirmed = "confirmed"

// Registration represents a participant's signup for one activity.
type Registration struct {
	ID                  string    `json:"_id"`
	ActivityID          string    `json:"activity_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Gender              string    `json:"gender"`
	SpecialRequirements string    `json:"special_requirements"`
	RegistrationTime    time.Time `json:"registration_time"`
	Status              string    `json:"status"`
}

// RegistrationDetail is a Registration enriched with activity fields when the
// referenced activity still resolves. Both fields are absent from the JSON
// output otherwise.
type RegistrationDetail struct {
	Registration
	ActivityName string `json:"activity_name,omitempty"`
	ActivityDate string `json:"activity_date,omitempty"`
}

// RegisterRequest is the body of POST /activities/{id}/register.
type RegisterRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Gender              string `json:"gender"`
	SpecialRequirements string `json:"special_requirements"`
}

// requiredFields preserves the validation order of the registration form.
var requiredFields = []struct {
	name  string
	value func(*RegisterRequest) string
}{
	{"name", func(r *RegisterRequest) string { return r.Name }},
	{"email", func(r *RegisterRequest) string { return r.Email }},
	{"phone", func(r *RegisterRequest) string { return r.Phone }},
	{"gender", func(r *RegisterRequest) string { return r.Gender }},
}

// MissingField returns the first required field that is empty after trimming,
// or "" when the request is complete.
func (r *RegisterRequest) MissingField() string {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			return f.name
		}
	}
	return ""
}
