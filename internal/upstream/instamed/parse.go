package instamed

import (
	"encoding/json"

	"github.com/NicolasChusseau/MedicaZelda-API/pkg/field"
)

// PageCap is the directory's page-size ceiling. Requests for more than
// 100 members are silently truncated to it, never rejected; the value is
// imposed by the upstream and is not a tunable.
const PageCap = 100

// Record is the uniform shape extracted from one directory member.
// Every field defaults to Unknown independently; unlike the government
// record there is no derivation between fields.
type Record struct {
	RPPS        field.Field `json:"rpps"`
	Firstname   field.Field `json:"firstname"`
	Lastname    field.Field `json:"lastname"`
	Specialty   field.Field `json:"specialty"`
	Email       field.Field `json:"email"`
	PhoneNumber field.Field `json:"phoneNumber"`
	Address     field.Field `json:"address"`
	ZipCode     field.Field `json:"zipCode"`
	City        field.Field `json:"city"`
}

// Empty reports whether no field carried a usable value. The directory's
// JSON "error" documents have none of the member keys, so they parse to
// an empty record.
func (r Record) Empty() bool {
	return !r.RPPS.IsKnown() && !r.Firstname.IsKnown() && !r.Lastname.IsKnown() &&
		!r.Specialty.IsKnown() && !r.Email.IsKnown() && !r.PhoneNumber.IsKnown() &&
		!r.Address.IsKnown() && !r.ZipCode.IsKnown() && !r.City.IsKnown()
}

// member mirrors the upstream key names. field.Field's unmarshalling
// absorbs null, "", and numeric values per field.
type member struct {
	IDRpps      field.Field `json:"idRpps"`
	FirstName   field.Field `json:"firstName"`
	LastName    field.Field `json:"lastName"`
	Specialty   field.Field `json:"specialty"`
	Email       field.Field `json:"email"`
	PhoneNumber field.Field `json:"phoneNumber"`
	Address     field.Field `json:"address"`
	Zipcode     field.Field `json:"zipcode"`
	City        field.Field `json:"city"`
}

func (m member) record() Record {
	return Record{
		RPPS:        m.IDRpps,
		Firstname:   m.FirstName,
		Lastname:    m.LastName,
		Specialty:   m.Specialty,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		ZipCode:     m.Zipcode,
		City:        m.City,
	}
}

// ParseMember extracts a Record from one raw member document. It never
// fails: a document of the wrong shape parses to an all-Unknown record.
func ParseMember(doc json.RawMessage) Record {
	var m member
	if err := json.Unmarshal(doc, &m); err != nil {
		return Record{}
	}
	return m.record()
}

// searchPage mirrors the Hydra result envelope.
type searchPage struct {
	TotalItems int               `json:"hydra:totalItems"`
	Members    []json.RawMessage `json:"hydra:member"`
}

// ParseSearch extracts the bounded member list from a raw paged result.
// At most min(pageSize, total, PageCap) records are returned, in source
// order. A malformed envelope yields a zero total and no members.
func ParseSearch(doc json.RawMessage, pageSize int) ([]Record, int) {
	var page searchPage
	if err := json.Unmarshal(doc, &page); err != nil {
		return nil, 0
	}

	n := pageSize
	if page.TotalItems < n {
		n = page.TotalItems
	}
	if n > PageCap {
		n = PageCap
	}
	// The advertised total can exceed what the page actually carries.
	if len(page.Members) < n {
		n = len(page.Members)
	}
	if n <= 0 {
		return nil, page.TotalItems
	}

	records := make([]Record, 0, n)
	for _, raw := range page.Members[:n] {
		records = append(records, ParseMember(raw))
	}
	return records, page.TotalItems
}
