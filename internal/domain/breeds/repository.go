package breeds

import (
	"context"
	"io"
)

// Repository es el catálogo persistido. No existe borrado.
type Repository interface {
	SelectAll(ctx context.Context) ([]Breed, error)
	InsertMany(ctx context.Context, items []Breed) error
	InsertOne(ctx context.Context, b Breed) error
	UpdateByDescription(ctx context.Context, description string, b Breed) error
}

// Fetcher trae el markup crudo de la página fuente.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
