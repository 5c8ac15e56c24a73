package practitioner

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/NicolasChusseau/MedicaZelda-API/internal/upstream/esante"
	"github.com/NicolasChusseau/MedicaZelda-API/internal/upstream/instamed"
)

// IgnoreName is the literal path sentinel meaning "do not filter on this
// name part" in a search request.
const IgnoreName = "null"

// GovAPI is the government gateway surface the service needs.
type GovAPI interface {
	Practitioner(ctx context.Context, rpps string) (json.RawMessage, error)
}

// DirAPI is the directory surface the service needs.
type DirAPI interface {
	Practitioner(ctx context.Context, rpps string) (json.RawMessage, error)
	Search(ctx context.Context, firstname, lastname string) (json.RawMessage, error)
}

// Service orchestrates the upstream calls and drives the reconciler.
// It holds no per-request state; every lookup is built once, fully, and
// discarded with the response.
type Service struct {
	gov      GovAPI
	dir      DirAPI
	pageSize int
}

// NewService wires the two upstream clients. defaultPageSize bounds name
// searches that do not specify their own size; it is clamped to the
// directory's page cap.
func NewService(gov GovAPI, dir DirAPI, defaultPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = 30
	}
	if defaultPageSize > instamed.PageCap {
		defaultPageSize = instamed.PageCap
	}
	return &Service{gov: gov, dir: dir, pageSize: defaultPageSize}
}

// DefaultPageSize returns the configured search page size.
func (s *Service) DefaultPageSize() int {
	return s.pageSize
}

// sourceState is one source's resolved outcome. A source is in exactly
// one state: it answered with data, answered empty, or did not answer.
type sourceState int

const (
	srcFound sourceState = iota
	srcNotFound
	srcUnavailable
)

// LookupGov fetches and normalizes the government record for one RPPS
// number. A transport failure is Unavailable({GOV}); a bundle with no
// usable field at all is ErrNotFound.
func (s *Service) LookupGov(ctx context.Context, rpps string) (esante.Record, error) {
	rec, state := s.lookupGov(ctx, rpps)
	switch state {
	case srcUnavailable:
		return esante.Record{}, &UnavailableError{Sources: []Source{SourceGov}}
	case srcNotFound:
		return esante.Record{}, ErrNotFound
	}
	return rec, nil
}

// LookupDir fetches and normalizes the directory record for one RPPS
// number, under the same per-source rules as LookupGov.
func (s *Service) LookupDir(ctx context.Context, rpps string) (instamed.Record, error) {
	rec, state := s.lookupDir(ctx, rpps)
	switch state {
	case srcUnavailable:
		return instamed.Record{}, &UnavailableError{Sources: []Source{SourceDir}}
	case srcNotFound:
		return instamed.Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *Service) lookupGov(ctx context.Context, rpps string) (esante.Record, sourceState) {
	doc, err := s.gov.Practitioner(ctx, rpps)
	if err != nil {
		return esante.Record{}, srcUnavailable
	}
	rec := esante.ParseBundle(doc, rpps)
	if rec.Empty() {
		return rec, srcNotFound
	}
	return rec, srcFound
}

func (s *Service) lookupDir(ctx context.Context, rpps string) (instamed.Record, sourceState) {
	doc, err := s.dir.Practitioner(ctx, rpps)
	if err != nil {
		return instamed.Record{}, srcUnavailable
	}
	rec := instamed.ParseMember(doc)
	if rec.Empty() {
		return rec, srcNotFound
	}
	return rec, srcFound
}

// Lookup queries both sources for one RPPS number and reconciles the
// pair. The two calls have no ordering dependency and run concurrently.
func (s *Service) Lookup(ctx context.Context, rpps string) (Practitioner, error) {
	type govResult struct {
		rec   esante.Record
		state sourceState
	}
	govCh := make(chan govResult, 1)
	go func() {
		rec, state := s.lookupGov(ctx, rpps)
		govCh <- govResult{rec, state}
	}()

	dirRec, dirState := s.lookupDir(ctx, rpps)
	gov := <-govCh

	if err := resolvePair(gov.state, dirState); err != nil {
		return Practitioner{}, err
	}
	// A notFound side merges as an all-Unknown record; ParseBundle and
	// ParseMember already return exactly that for empty documents.
	return Reconcile(gov.rec, dirRec, rpps), nil
}

// resolvePair is the partial-failure matrix for a dual-source lookup.
// Unavailable beats NotFound: a half-answered lookup with a dead source
// must not masquerade as a clean miss.
func resolvePair(gov, dir sourceState) error {
	if gov == srcUnavailable || dir == srcUnavailable {
		var down []Source
		if gov == srcUnavailable {
			down = append(down, SourceGov)
		}
		if dir == srcUnavailable {
			down = append(down, SourceDir)
		}
		return &UnavailableError{Sources: down}
	}
	if gov == srcNotFound && dir == srcNotFound {
		return ErrNotFound
	}
	return nil
}

// SearchByName looks practitioners up by name in the directory and
// enriches each hit with its government record. The literal "null" in
// either position means that name part is not part of the query; both
// being ignored is an invalid request.
//
// pageSize <= 0 falls back to the configured default; the directory's
// page cap bounds it either way. Results preserve directory order. A
// transport failure on any of the fanned-out government calls aborts the
// whole search; no partial list is ever returned.
func (s *Service) SearchByName(ctx context.Context, firstname, lastname string, pageSize int) ([]Practitioner, error) {
	if firstname == IgnoreName {
		firstname = ""
	}
	if lastname == IgnoreName {
		lastname = ""
	}
	if firstname == "" && lastname == "" {
		return nil, &InvalidRequestError{Reason: "You must provide at least one parameter"}
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}

	doc, err := s.dir.Search(ctx, firstname, lastname)
	if err != nil {
		return nil, &UnavailableError{Sources: []Source{SourceDir}}
	}
	members, total := instamed.ParseSearch(doc, pageSize)
	if total == 0 {
		return nil, ErrNotFound
	}

	results := make([]Practitioner, len(members))
	g, ctx := errgroup.WithContext(ctx)
	for i, dir := range members {
		i, dir := i, dir
		g.Go(func() error {
			rpps := dir.RPPS.OrUnknown()
			var gov esante.Record
			// No government call for a member without a usable id: the
			// gateway can only answer such a query with an empty bundle.
			if dir.RPPS.IsKnown() {
				var state sourceState
				gov, state = s.lookupGov(ctx, rpps)
				if state == srcUnavailable {
					return &UnavailableError{Sources: []Source{SourceGov}}
				}
			}
			results[i] = Reconcile(gov, dir, rpps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
