package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pet-api/internal/domain/breeds"
	"pet-api/internal/router"
)

const wikiPage = `<html><body>
<div class="NavFrame"><div class="NavContent"><table>
<tr><th>Raça</th><th>País origem</th><th>Significado</th><th>Ancestrais</th><th>Classificação FCI</th><th>Imagem</th></tr>
<tr>
  <td><a href="/wiki/Akita">Akita</a></td>
  <td><a href="/wiki/Japao">Japão</a></td>
  <td>%s</td>
  <td>Matagi</td>
  <td>Grupo 5</td>
  <td><img src="//upload.wikimedia.org/thumb/250px-Akita.jpg"></td>
</tr>
<tr>
  <td><a href="/wiki/Boxer">Boxer</a></td>
  <td><a href="/wiki/Alemanha">Alemanha</a></td>
  <td>Lutador</td>
  <td>Bullenbeisser</td>
  <td>Grupo 2</td>
  <td></td>
</tr>
</table></div></div>
</body></html>`

// fakeWiki sirve la página de razas; meaning cambia el significado del Akita.
func fakeWiki(t *testing.T, meaning *atomic.Value, fail *atomic.Bool) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, wikiPage, meaning.Load().(string))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_SyncCatalog(t *testing.T) {
	var meaning atomic.Value
	meaning.Store("Cão de caça")
	var fail atomic.Bool
	wiki := fakeWiki(t, &meaning, &fail)

	ts := httptest.NewServer(router.NewRouter(router.Options{SourceURL: wiki.URL}))
	defer ts.Close()

	userID := "admin-1"

	// 1) Sin auth => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/v1/dog/breeds/update-database", "", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without credentials, got %d body=%s", st, string(body))
		}
	}

	// 2) Método inválido => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/v1/dog/breeds/update-database", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on GET, got %d", st)
		}
	}

	// 3) Catálogo vacío => insert masivo
	{
		st, body := doReq(t, ts.URL, "POST", "/v1/dog/breeds/update-database", userID, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 first sync, got %d body=%s", st, string(body))
		}
		var res breeds.SyncResult
		_ = json.Unmarshal(body, &res)
		if res.Mined != 2 || res.Summary.Inserted != 2 {
			t.Fatalf("unexpected first sync %+v", res)
		}
	}

	// 4) Listado
	items := listBreeds(t, ts.URL)
	if len(items) != 2 || items[0].Description != "Akita" || items[0].Meaning != "Cão de caça" {
		t.Fatalf("unexpected catalog %+v", items)
	}
	if items[0].WikiURL != "https://pt.wikipedia.org/wiki/Akita" {
		t.Fatalf("unexpected wiki url %q", items[0].WikiURL)
	}
	if items[0].Extra.ImageURL.Normalized != "https://upload.wikimedia.org/thumb/950px-Akita.jpg" {
		t.Fatalf("unexpected image %q", items[0].Extra.ImageURL.Normalized)
	}
	if items[1].Extra.ImageURL.Original != "" {
		t.Fatalf("expected no image for Boxer, got %q", items[1].Extra.ImageURL.Original)
	}
	akitaID := items[0].ID

	// 5) La fuente cambia => update in-place
	meaning.Store("Cão grande")
	{
		st, body := doReq(t, ts.URL, "POST", "/v1/dog/breeds/update-database", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 second sync, got %d body=%s", st, string(body))
		}
		var res breeds.SyncResult
		_ = json.Unmarshal(body, &res)
		if res.Summary.Updated != 2 || res.Summary.Inserted != 0 {
			t.Fatalf("unexpected second sync %+v", res.Summary)
		}
	}

	items = listBreeds(t, ts.URL)
	if len(items) != 2 || items[0].Meaning != "Cão grande" || items[0].ID != akitaID {
		t.Fatalf("expected Akita updated in place, got %+v", items)
	}

	// 6) Fuente caída => 502 y el catálogo queda igual
	fail.Store(true)
	{
		st, _ := doReq(t, ts.URL, "POST", "/v1/dog/breeds/update-database", userID, nil)
		if st != http.StatusBadGateway {
			t.Fatalf("expected 502 when source is down, got %d", st)
		}
	}
	if got := listBreeds(t, ts.URL); len(got) != 2 {
		t.Fatalf("catalog must be untouched, got %d rows", len(got))
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !bytes.Contains(body, []byte("/v1/dog/breeds/update-database")) {
		t.Fatalf("swagger doc missing sync route")
	}
}

func listBreeds(t *testing.T, baseURL string) []breeds.Breed {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/v1/dog/breeds", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list breeds, got %d body=%s", st, string(body))
	}
	var items []breeds.Breed
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode breeds: %v", err)
	}
	return items
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
