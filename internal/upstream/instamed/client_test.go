package instamed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NicolasChusseau/MedicaZelda-API/internal/platform/fetch"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(fetch.NewClient(time.Second), srv.URL), srv
}

func TestClient_Practitioner(t *testing.T) {
	var gotPath, gotAccept string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"idRpps":"123"}`))
	})
	defer srv.Close()

	doc, err := c.Practitioner(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(doc) != `{"idRpps":"123"}` {
		t.Errorf("unexpected body: %s", doc)
	}
	if gotPath != "/rpps/123" {
		t.Errorf("path = %q, want /rpps/123", gotPath)
	}
	if gotAccept != "application/ld+json" {
		t.Errorf("accept = %q, want application/ld+json", gotAccept)
	}
}

func TestClient_Search(t *testing.T) {
	var gotFirst, gotLast string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotFirst = r.URL.Query().Get("firstName")
		gotLast = r.URL.Query().Get("lastName")
		w.Write([]byte(`{"hydra:totalItems":0,"hydra:member":[]}`))
	})
	defer srv.Close()

	if _, err := c.Search(context.Background(), "marie", "du pont"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFirst != "marie" {
		t.Errorf("firstName = %q, want marie", gotFirst)
	}
	if gotLast != "du pont" {
		t.Errorf("lastName = %q, want du pont (escaping must round-trip)", gotLast)
	}
}
