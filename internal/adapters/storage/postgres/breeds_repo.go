package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pet-api/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

const insertBreedSQL = `
	INSERT INTO breeds (
		id, description, animal_type,
		wiki_url, meaning, fci_classification,
		extra
	) VALUES ($1,$2,$3,$4,$5,$6,$7)
`

func (r *BreedsRepo) SelectAll(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, description, animal_type,
			wiki_url, meaning, fci_classification,
			extra
		FROM breeds
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var (
			b     breeds.Breed
			extra []byte
		)
		if err := rows.Scan(
			&b.ID,
			&b.Description,
			&b.AnimalType,
			&b.WikiURL,
			&b.Meaning,
			&b.FCIClassification,
			&extra,
		); err != nil {
			return nil, err
		}
		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &b.Extra); err != nil {
				return nil, fmt.Errorf("decode extra for %q: %w", b.Description, err)
			}
		}
		if b.Extra.KnownCountries == nil {
			b.Extra.KnownCountries = []string{}
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

// InsertMany inserta todo el lote en una transacción.
func (r *BreedsRepo) InsertMany(ctx context.Context, items []breeds.Breed) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertBreedSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range items {
		args, err := insertArgs(b)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert %q: %w", b.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *BreedsRepo) InsertOne(ctx context.Context, b breeds.Breed) error {
	args, err := insertArgs(b)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertBreedSQL, args...)
	return err
}

func (r *BreedsRepo) UpdateByDescription(ctx context.Context, description string, b breeds.Breed) error {
	extra, err := encodeExtra(b)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE breeds
		SET
			description = $2,
			animal_type = $3,
			wiki_url = $4,
			meaning = $5,
			fci_classification = $6,
			extra = $7
		WHERE description = $1
	`,
		description,
		b.Description,
		int(b.AnimalType),
		b.WikiURL,
		b.Meaning,
		b.FCIClassification,
		extra,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %q: %w", description, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// El ID siempre lo genera el store; un re-envío del catálogo crea una fila nueva.
// Una description vacía se guarda igual: la fila mal formada no frena el lote.
func insertArgs(b breeds.Breed) ([]any, error) {
	extra, err := encodeExtra(b)
	if err != nil {
		return nil, err
	}
	return []any{
		uuid.NewString(),
		b.Description,
		int(b.AnimalType),
		b.WikiURL,
		b.Meaning,
		b.FCIClassification,
		extra,
	}, nil
}

func encodeExtra(b breeds.Breed) ([]byte, error) {
	e := b.Extra
	if e.KnownCountries == nil {
		e.KnownCountries = []string{}
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode extra for %q: %w", b.Description, err)
	}
	return raw, nil
}
