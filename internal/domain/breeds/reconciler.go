package breeds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-api/internal/platform/logger"
)

// Mode define cuánto del catálogo se procesa por invocación.
type Mode string

const (
	// ModeFull recorre todo el catálogo y aplica todas las operaciones.
	ModeFull Mode = "full"
	// ModeFirst conserva el contrato histórico: una sola decisión por llamada
	// y se corta ante el primer error del store.
	ModeFirst Mode = "first"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFull, "":
		return ModeFull, nil
	case ModeFirst:
		return ModeFirst, nil
	default:
		return "", fmt.Errorf("%w: unknown sync mode %q", ErrInvalidInput, s)
	}
}

type OpKind string

const (
	OpInsertMany OpKind = "insert_many"
	OpInsert     OpKind = "insert"
	OpUpdate     OpKind = "update"
)

// Operation es una decisión de reconciliación.
// OpInsertMany usa Batch; OpInsert y OpUpdate usan Breed. Key es la description.
type Operation struct {
	Kind  OpKind
	Key   string
	Breed Breed
	Batch []Breed
}

// Plan decide las operaciones recorriendo el catálogo completo:
//   - catálogo vacío: un único insert masivo con todo lo cosechado;
//   - por cada registro del catálogo con match por description: update con los datos cosechados;
//   - sin match: se re-envía el registro del catálogo tal cual.
func Plan(harvested, catalog []Breed) []Operation {
	if len(catalog) == 0 {
		if len(harvested) == 0 {
			return nil
		}
		batch := make([]Breed, len(harvested))
		copy(batch, harvested)
		return []Operation{{Kind: OpInsertMany, Batch: batch}}
	}

	// Primer match gana, igual que una búsqueda lineal.
	byDesc := make(map[string]int, len(harvested))
	for i, h := range harvested {
		if _, ok := byDesc[h.Description]; !ok {
			byDesc[h.Description] = i
		}
	}

	ops := make([]Operation, 0, len(catalog))
	for _, c := range catalog {
		if i, ok := byDesc[c.Description]; ok {
			ops = append(ops, Operation{Kind: OpUpdate, Key: c.Description, Breed: harvested[i]})
			continue
		}
		ops = append(ops, Operation{Kind: OpInsert, Key: c.Description, Breed: c})
	}
	return ops
}

// PlanFirstDecision aplica las mismas reglas que Plan pero devuelve como
// máximo la primera decisión (el insert masivo cuenta como una sola).
func PlanFirstDecision(harvested, catalog []Breed) []Operation {
	ops := Plan(harvested, catalog)
	if len(ops) > 1 {
		return ops[:1]
	}
	return ops
}

// OpResult es el resultado de aplicar una operación.
type OpResult struct {
	Kind  OpKind `json:"kind"`
	Key   string `json:"key,omitempty"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// Summary agrega el resultado de todas las operaciones aplicadas.
type Summary struct {
	Inserted int        `json:"inserted"`
	Updated  int        `json:"updated"`
	Failed   int        `json:"failed"`
	Results  []OpResult `json:"results"`

	errs []error
}

// Err une los errores de persistencia; nil si todo se aplicó.
func (s Summary) Err() error {
	return errors.Join(s.errs...)
}

// Reconciler aplica operaciones contra el store inyectado.
type Reconciler struct {
	repo Repository
	log  logger.Logger
}

func NewReconciler(repo Repository, log logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{
		repo: repo,
		log:  log.With(map[string]any{"component": "reconciler"}),
	}
}

// Apply ejecuta ops en orden. Cada fallo queda en el Summary como
// *PersistenceError; con stopOnError se abandonan las operaciones restantes.
func (r *Reconciler) Apply(ctx context.Context, ops []Operation, stopOnError bool) Summary {
	sum := Summary{Results: make([]OpResult, 0, len(ops))}

	for _, op := range ops {
		res, err := r.apply(ctx, op)
		if err != nil {
			perr := &PersistenceError{Op: string(op.Kind), Key: op.Key, Err: err}
			res.Error = perr.Error()
			sum.Failed++
			sum.errs = append(sum.errs, perr)
			sum.Results = append(sum.Results, res)

			r.log.Error("operation failed", map[string]any{
				"op":  op.Kind,
				"key": op.Key,
				"err": err,
			})
			if stopOnError {
				break
			}
			continue
		}

		switch op.Kind {
		case OpUpdate:
			sum.Updated += res.Count
		default:
			sum.Inserted += res.Count
		}
		sum.Results = append(sum.Results, res)
	}

	return sum
}

func (r *Reconciler) apply(ctx context.Context, op Operation) (OpResult, error) {
	res := OpResult{Kind: op.Kind, Key: op.Key}

	switch op.Kind {
	case OpInsertMany:
		if err := r.repo.InsertMany(ctx, op.Batch); err != nil {
			return res, err
		}
		res.Count = len(op.Batch)
	case OpInsert:
		if err := r.repo.InsertOne(ctx, op.Breed); err != nil {
			return res, err
		}
		res.Count = 1
	case OpUpdate:
		if err := r.repo.UpdateByDescription(ctx, op.Key, op.Breed); err != nil {
			return res, err
		}
		res.Count = 1
	default:
		return res, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, op.Kind)
	}
	return res, nil
}
