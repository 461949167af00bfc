package breeds

import (
	"context"

	"pet-api/internal/platform/logger"
)

// SyncResult es la respuesta del caso de uso de sincronización.
type SyncResult struct {
	Mode         Mode          `json:"mode"`
	Mined        int           `json:"mined"`
	Planned      int           `json:"planned"`
	Summary      Summary       `json:"summary"`
	Degradations []Degradation `json:"degradations"`
}

type Service struct {
	repo       Repository
	harvester  *Harvester
	reconciler *Reconciler
	mode       Mode
	log        logger.Logger
}

func NewService(repo Repository, harvester *Harvester, mode Mode, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if mode == "" {
		mode = ModeFull
	}
	return &Service{
		repo:       repo,
		harvester:  harvester,
		reconciler: NewReconciler(repo, log),
		mode:       mode,
		log:        log.With(map[string]any{"component": "breeds"}),
	}
}

func (s *Service) Mode() Mode { return s.mode }

// Sync lee el catálogo, cosecha la fuente y reconcilia.
// Errores:
//   - *PersistenceError si no se pudo leer el catálogo;
//   - *FetchError si la cosecha falló (no se toca el store);
//   - errores de operaciones individuales: el SyncResult igual se devuelve
//     con el detalle por operación, junto al error agregado.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	catalog, err := s.repo.SelectAll(ctx)
	if err != nil {
		return SyncResult{}, &PersistenceError{Op: "select", Err: err}
	}

	harvest, err := s.harvester.Harvest(ctx)
	if err != nil {
		s.log.Error("harvest failed", map[string]any{"err": err})
		return SyncResult{}, err
	}

	var ops []Operation
	if s.mode == ModeFirst {
		ops = PlanFirstDecision(harvest.Breeds, catalog)
	} else {
		ops = Plan(harvest.Breeds, catalog)
	}

	sum := s.reconciler.Apply(ctx, ops, s.mode == ModeFirst)

	res := SyncResult{
		Mode:         s.mode,
		Mined:        len(harvest.Breeds),
		Planned:      len(ops),
		Summary:      sum,
		Degradations: harvest.Degradations,
	}

	s.log.Info("sync done", map[string]any{
		"mode":     s.mode,
		"catalog":  len(catalog),
		"mined":    res.Mined,
		"inserted": sum.Inserted,
		"updated":  sum.Updated,
		"failed":   sum.Failed,
	})

	return res, sum.Err()
}

// List devuelve el catálogo persistido.
func (s *Service) List(ctx context.Context) ([]Breed, error) {
	items, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "select", Err: err}
	}
	return items, nil
}
