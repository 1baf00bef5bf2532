package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kantodex/kantodex/pkg/pokeapi"
	"github.com/kantodex/kantodex/pkg/storage"
)

type fakeCatalog struct{}

func (fakeCatalog) Lookup(ctx context.Context, key string) (pokeapi.Record, error) {
	if key != "pikachu" && key != "25" {
		return pokeapi.Record{}, pokeapi.ErrNotFound
	}
	return pokeapi.Record{
		ID:    25,
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: []pokeapi.Stat{{Name: "hp", Value: 35}},
	}, nil
}

func (fakeCatalog) ListNames(ctx context.Context, limit, offset int) ([]string, error) {
	return []string{"pikachu", "raichu"}, nil
}

func (fakeCatalog) TypeMembers(ctx context.Context, label string) ([]string, error) {
	if label == "electric" {
		return []string{"pikachu"}, nil
	}
	return nil, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "subs.sqlite"))
	if err != nil {
		t.Fatalf("opening submission log: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srv := httptest.NewServer(New(fakeCatalog{}, db, "", "").Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getState(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var st map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	return st
}

func TestSearchFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/search", "application/json", strings.NewReader(`{"query":"pikachu"}`))
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	st := getState(t, resp)
	if st["surface"] != "results" {
		t.Fatalf("expected results surface, got %v", st["surface"])
	}

	resp, err = http.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatalf("state request failed: %v", err)
	}
	st = getState(t, resp)
	if st["surface"] != "results" || st["input"] != "pikachu" {
		t.Fatalf("state not retained across requests: %v", st)
	}
}

func TestSuggestAndReset(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/suggest?q=chu")
	if err != nil {
		t.Fatalf("suggest request failed: %v", err)
	}
	st := getState(t, resp)
	if st["surface"] != "suggestions" {
		t.Fatalf("expected suggestions surface, got %v", st["surface"])
	}

	resp, err = http.Post(srv.URL+"/api/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	st = getState(t, resp)
	if st["surface"] != "idle" {
		t.Fatalf("expected idle after reset, got %v", st["surface"])
	}
}

func TestContactValidationAndLog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/contact", "application/json",
		strings.NewReader(`{"name":"","email":"bad","message":""}`))
	if err != nil {
		t.Fatalf("contact request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid submission should be rejected, got %d", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/api/contact", "application/json",
		strings.NewReader(`{"name":"Ash","email":"ash@pallet.town","message":"hi"}`))
	if err != nil {
		t.Fatalf("contact request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid submission rejected with %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/submissions")
	if err != nil {
		t.Fatalf("submissions request failed: %v", err)
	}
	defer resp.Body.Close()
	var subs []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		t.Fatalf("decoding submissions: %v", err)
	}
	if len(subs) != 1 || subs[0]["name"] != "Ash" {
		t.Fatalf("expected the logged submission, got %v", subs)
	}
}

func TestBasicAuth(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "subs.sqlite"))
	if err != nil {
		t.Fatalf("opening submission log: %v", err)
	}
	defer db.Close()

	srv := httptest.NewServer(New(fakeCatalog{}, db, "ash", "pikapika").Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/state", nil)
	req.SetBasicAuth("ash", "pikapika")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d", resp.StatusCode)
	}
}

func TestUnknownTypeRendersMessage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/type/fairy")
	if err != nil {
		t.Fatalf("type request failed: %v", err)
	}
	st := getState(t, resp)
	if st["surface"] != "results" {
		t.Fatalf("filter failures render inside the results surface, got %v", st["surface"])
	}
	if _, ok := st["message"]; !ok {
		t.Fatal("expected a displayable message")
	}
}
