package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"pet-api/internal/domain/breeds"
)

var (
	ErrNotFound = errors.New("not found")
)

type breedRepo struct {
	mu   sync.RWMutex
	rows []breeds.Breed // orden de inserción
}

func NewBreedRepo() breeds.Repository {
	return &breedRepo{}
}

// SelectAll devuelve copias para que el caller no mute el estado interno.
func (r *breedRepo) SelectAll(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, clone(b))
	}
	return out, nil
}

// InsertMany guarda los registros tal cual vienen, incluso con description vacía.
func (r *breedRepo) InsertMany(ctx context.Context, items []breeds.Breed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range items {
		r.rows = append(r.rows, withNewID(b))
	}
	return nil
}

func (r *breedRepo) InsertOne(ctx context.Context, b breeds.Breed) error {
	return r.InsertMany(ctx, []breeds.Breed{b})
}

// UpdateByDescription pisa todas las filas con esa description, conservando su ID.
func (r *breedRepo) UpdateByDescription(ctx context.Context, description string, b breeds.Breed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range r.rows {
		if r.rows[i].Description != description {
			continue
		}
		updated := clone(b)
		updated.ID = r.rows[i].ID
		r.rows[i] = updated
		n++
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// El store siempre asigna ID propio; un re-envío genera una fila nueva.
func withNewID(b breeds.Breed) breeds.Breed {
	b = clone(b)
	b.ID = uuid.NewString()
	return b
}

func clone(b breeds.Breed) breeds.Breed {
	b.Extra.KnownCountries = slices.Clone(b.Extra.KnownCountries)
	if b.Extra.KnownCountries == nil {
		b.Extra.KnownCountries = []string{}
	}
	return b
}
