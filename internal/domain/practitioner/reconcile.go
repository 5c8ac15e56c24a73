package practitioner

import (
	"github.com/NicolasChusseau/MedicaZelda-API/internal/upstream/esante"
	"github.com/NicolasChusseau/MedicaZelda-API/internal/upstream/instamed"
)

// Reconcile merges one government record and one directory record into a
// unified profile. It is a pure function of its inputs.
//
// Precedence: the directory wins for the fields both sources can carry
// (firstname, lastname, email), with the government filling its gaps.
// gender only exists on the government side; specialty, phoneNumber,
// address, zipCode and city only on the directory side. The rpps is
// always the supplied lookup key, never either source's own echo of it:
// a source returning a different or garbled id must not leak into the
// profile.
func Reconcile(gov esante.Record, dir instamed.Record, rpps string) Practitioner {
	return Practitioner{
		RPPS:        rpps,
		Firstname:   dir.Firstname.Or(gov.Firstname).OrUnknown(),
		Lastname:    dir.Lastname.Or(gov.Lastname).OrUnknown(),
		Email:       dir.Email.Or(gov.Email).OrUnknown(),
		Specialty:   dir.Specialty.OrUnknown(),
		PhoneNumber: dir.PhoneNumber.OrUnknown(),
		Address:     dir.Address.OrUnknown(),
		ZipCode:     dir.ZipCode.OrUnknown(),
		City:        dir.City.OrUnknown(),
		Gender:      gov.Gender.OrUnknown(),
	}
}
