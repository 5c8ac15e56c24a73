package instamed

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestParseMember(t *testing.T) {
	doc := `{
		"idRpps": "10002527652",
		"firstName": "",
		"lastName": "Martin",
		"specialty": "Cardiologie",
		"email": null,
		"phoneNumber": null,
		"address": "1 rue de la Paix",
		"zipcode": "75002",
		"city": "Paris"
	}`
	rec := ParseMember(json.RawMessage(doc))

	if got := rec.RPPS.Value(); got != "10002527652" {
		t.Errorf("rpps = %q, want 10002527652", got)
	}
	if rec.Firstname.IsKnown() {
		t.Error("an empty firstName must be Unknown")
	}
	if got := rec.Lastname.Value(); got != "Martin" {
		t.Errorf("lastname = %q, want Martin", got)
	}
	if rec.Email.IsKnown() || rec.PhoneNumber.IsKnown() {
		t.Error("null fields must be Unknown")
	}
	if got := rec.ZipCode.Value(); got != "75002" {
		t.Errorf("zipCode = %q, want 75002", got)
	}
	if rec.Empty() {
		t.Error("record must not be empty")
	}
}

func TestParseMember_NumericRpps(t *testing.T) {
	rec := ParseMember(json.RawMessage(`{"idRpps": 10002527652}`))
	if got := rec.RPPS.Value(); got != "10002527652" {
		t.Errorf("a numeric idRpps must coerce to string, got %q", got)
	}
}

func TestParseMember_ErrorDocumentIsEmpty(t *testing.T) {
	rec := ParseMember(json.RawMessage(`{"error": "practitioner not found"}`))
	if !rec.Empty() {
		t.Errorf("an error document must parse to an empty record, got %+v", rec)
	}
}

func TestParseMember_MalformedDocumentIsEmpty(t *testing.T) {
	if rec := ParseMember(json.RawMessage(`["not", "an", "object"]`)); !rec.Empty() {
		t.Errorf("expected empty record, got %+v", rec)
	}
}

func searchDoc(total, members int) json.RawMessage {
	parts := make([]string, members)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"idRpps":"rpps-%d","lastName":"N%d"}`, i, i)
	}
	doc := fmt.Sprintf(`{"hydra:totalItems": %d, "hydra:member": [%s]}`,
		total, strings.Join(parts, ","))
	return json.RawMessage(doc)
}

func TestParseSearch_Bound(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		members  int
		pageSize int
		want     int
	}{
		{"page size bounds", 10, 10, 3, 3},
		{"total bounds", 2, 2, 30, 2},
		{"cap bounds", 500, 150, 400, 100},
		{"zero total", 0, 0, 30, 0},
		{"short member list", 10, 4, 30, 4},
		{"zero page size", 10, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, total := ParseSearch(searchDoc(tc.total, tc.members), tc.pageSize)
			if len(records) != tc.want {
				t.Errorf("got %d records, want %d", len(records), tc.want)
			}
			if total != tc.total {
				t.Errorf("total = %d, want %d", total, tc.total)
			}
		})
	}
}

func TestParseSearch_PreservesOrder(t *testing.T) {
	records, _ := ParseSearch(searchDoc(5, 5), 5)
	for i, rec := range records {
		want := fmt.Sprintf("rpps-%d", i)
		if got := rec.RPPS.Value(); got != want {
			t.Errorf("record %d has rpps %q, want %q", i, got, want)
		}
	}
}

func TestParseSearch_MalformedEnvelope(t *testing.T) {
	records, total := ParseSearch(json.RawMessage(`"nope"`), 30)
	if len(records) != 0 || total != 0 {
		t.Errorf("expected no records and zero total, got %d/%d", len(records), total)
	}
}
