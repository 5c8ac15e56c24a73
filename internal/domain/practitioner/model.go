// Package practitioner is the reconciliation engine: it orchestrates the
// two upstream directories and merges their records into one unified
// practitioner profile keyed by the RPPS registration number.
package practitioner

// Source identifies one of the two upstream directories.
type Source string

const (
	SourceGov Source = "GOV"
	SourceDir Source = "DIR"
)

// Practitioner is the unified profile served to clients. All fields are
// plain strings; a field no source had a value for carries the literal
// "unknown", preserving the historical JSON contract.
type Practitioner struct {
	RPPS        string `json:"rpps"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Specialty   string `json:"specialty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	Gender      string `json:"gender"`
}
