package wikipedia

import (
	"bytes"
	"context"
	"io"
	"time"

	"pet-api/internal/platform/httpclient"
)

// Wikipedia bloquea clientes sin User-Agent identificable.
const userAgent = "pet-api/1.0 (breed catalog sync)"

// Fetcher implementa breeds.Fetcher sobre httpclient.
type Fetcher struct {
	client *httpclient.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	c := httpclient.New(timeout)
	c.UserAgent = userAgent
	return &Fetcher{client: c}
}

// Fetch descarga la página completa. Un status no-2xx vuelve como *httpclient.HTTPError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	raw, err := f.client.GetRaw(ctx, url, map[string]string{
		"Accept": "text/html",
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}
