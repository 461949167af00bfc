package breeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-api/internal/middleware"
	"pet-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

type stubSigner struct {
	calls int
}

func (s *stubSigner) SignIn(_ context.Context, c auth.Credentials) (auth.Claims, error) {
	s.calls++
	if c.Email == "admin@pets.test" && c.Password == "secret" {
		return auth.Claims{UserID: "u-1", Email: c.Email}, nil
	}
	return auth.Claims{}, errors.New("invalid login")
}

func newTestServer(t *testing.T, repo Repository, f Fetcher, signer auth.CredentialsVerifier) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil, nil))
	RegisterRoutes(r, newTestService(repo, f, ModeFull), signer)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, method, url string, headers map[string]string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("decode error body: %v body=%s", err, string(body))
	}
	return e.Error
}

func TestUpdateDatabase_RejectsNonPost(t *testing.T) {
	ts := newTestServer(t, &fakeRepo{}, &stubFetcher{body: breedsPageFixture}, nil)

	st, body := doReq(t, http.MethodGet, ts.URL+"/v1/dog/breeds/update-database", nil, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if msg := errorOf(t, body); msg != "Invalid method, use POST instead!" {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestUpdateDatabase_MissingCredentials(t *testing.T) {
	ts := newTestServer(t, &fakeRepo{}, &stubFetcher{body: breedsPageFixture}, &stubSigner{})

	st, body := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database", nil, map[string]any{})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if msg := errorOf(t, body); msg != "Invalid body! Lacking auth credentials!" {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestUpdateDatabase_BadCredentials(t *testing.T) {
	repo := &fakeRepo{}
	signer := &stubSigner{}
	ts := newTestServer(t, repo, &stubFetcher{body: breedsPageFixture}, signer)

	st, _ := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database", nil, map[string]any{
		"auth": map[string]string{"email": "admin@pets.test", "password": "wrong"},
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", st)
	}
	if signer.calls != 1 || len(repo.calls) != 0 {
		t.Fatalf("expected sign-in attempt and no writes, calls=%d writes=%d", signer.calls, len(repo.calls))
	}
}

func TestUpdateDatabase_CredentialsBulkInsert(t *testing.T) {
	repo := &fakeRepo{}
	ts := newTestServer(t, repo, &stubFetcher{body: breedsPageFixture}, &stubSigner{})

	st, body := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database", nil, map[string]any{
		"auth": map[string]string{"email": "admin@pets.test", "password": "secret"},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	var res SyncResult
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Summary.Inserted != 3 || res.Mined != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestUpdateDatabase_DebugUserUpdates(t *testing.T) {
	repo := &fakeRepo{rows: []Breed{breed("Beagle", "velho")}}
	ts := newTestServer(t, repo, &stubFetcher{body: breedsPageFixture}, nil)

	st, body := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database",
		map[string]string{"X-Debug-User-ID": "dev-1"}, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if repo.rows[0].Meaning != "Pequeno" {
		t.Fatalf("expected Beagle updated, got %+v", repo.rows[0])
	}
}

func TestUpdateDatabase_FetchFailureIsBadGateway(t *testing.T) {
	ts := newTestServer(t, &fakeRepo{}, &stubFetcher{err: errors.New("unreachable")}, nil)

	st, _ := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database",
		map[string]string{"X-Debug-User-ID": "dev-1"}, nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", st)
	}
}

func TestUpdateDatabase_PersistenceFailureReturnsDetail(t *testing.T) {
	repo := &fakeRepo{failOn: map[string]error{"insert_many:": errors.New("disk full")}}
	ts := newTestServer(t, repo, &stubFetcher{body: breedsPageFixture}, nil)

	st, body := doReq(t, http.MethodPost, ts.URL+"/v1/dog/breeds/update-database",
		map[string]string{"X-Debug-User-ID": "dev-1"}, nil)
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", st)
	}

	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Error == "" || e.Result == nil || e.Result.Summary.Failed != 1 {
		t.Fatalf("expected error with per-operation detail, got %s", string(body))
	}
}

func TestListBreeds(t *testing.T) {
	repo := &fakeRepo{rows: []Breed{breed("Akita", "x"), breed("Boxer", "y")}}
	ts := newTestServer(t, repo, &stubFetcher{}, nil)

	st, body := doReq(t, http.MethodGet, ts.URL+"/v1/dog/breeds", nil, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var items []Breed
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 || items[1].Description != "Boxer" {
		t.Fatalf("unexpected items %+v", items)
	}
}
