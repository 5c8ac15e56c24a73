package esante

import (
	"encoding/json"
	"strings"

	"github.com/NicolasChusseau/MedicaZelda-API/pkg/field"
)

// Record is the uniform shape extracted from one gateway bundle. The
// gateway does not expose a practitioner's name directly; firstname and
// lastname are derived from the contact email, so they are only ever
// known when the email is.
type Record struct {
	RPPS      string      `json:"rpps"`
	Firstname field.Field `json:"firstname"`
	Lastname  field.Field `json:"lastname"`
	Email     field.Field `json:"email"`
	Gender    field.Field `json:"gender"`
}

// Empty reports whether the gateway returned a stub with no usable data.
func (r Record) Empty() bool {
	return !r.Firstname.IsKnown() && !r.Lastname.IsKnown() &&
		!r.Email.IsKnown() && !r.Gender.IsKnown()
}

// bundle mirrors only the paths the parse walks. Everything else in the
// FHIR document is ignored.
type bundle struct {
	Entry []struct {
		Resource struct {
			Name []struct {
				Prefix []string `json:"prefix"`
			} `json:"name"`
			Extension []struct {
				Extension []extensionPair `json:"extension"`
			} `json:"extension"`
		} `json:"resource"`
	} `json:"entry"`
}

type extensionPair struct {
	URL         string `json:"url"`
	ValueString string `json:"valueString"`
}

// ParseBundle extracts a Record from a raw gateway document. It never
// fails: a structural surprise anywhere degrades the affected fields to
// Unknown. The rpps is the lookup key, echoed into the record untouched.
func ParseBundle(doc json.RawMessage, rpps string) Record {
	rec := Record{RPPS: rpps}

	var b bundle
	if err := json.Unmarshal(doc, &b); err != nil || len(b.Entry) == 0 {
		return rec
	}
	res := b.Entry[0].Resource

	// Gender rides in the civility prefix of the first recorded name.
	if len(res.Name) > 0 && len(res.Name[0].Prefix) > 0 {
		rec.Gender = field.Of(res.Name[0].Prefix[0])
	}

	// The contact email hides in a generic key/value extension list under
	// the url "value".
	if len(res.Extension) > 0 {
		for _, ext := range res.Extension[0].Extension {
			if ext.URL == "value" {
				rec.Email = field.Of(ext.ValueString)
			}
		}
	}

	if rec.Email.IsKnown() {
		rec.Firstname, rec.Lastname = DeriveNameFromEmail(rec.Email.Value())
	}
	return rec
}

// DeriveNameFromEmail splits the local part of a firstname.lastname email
// address into its two name components. A local part that does not split
// into both yields an Unknown pair; a malformed email is not an error.
func DeriveNameFromEmail(email string) (firstname, lastname field.Field) {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return field.Unknown, field.Unknown
	}
	first, rest, found := strings.Cut(local, ".")
	if !found || first == "" {
		return field.Unknown, field.Unknown
	}
	last, _, _ := strings.Cut(rest, ".")
	if last == "" {
		return field.Unknown, field.Unknown
	}
	return field.Known(first), field.Known(last)
}
