package breeds

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"

	"pet-api/internal/platform/logger"
)

// HarvestResult es lo que devuelve una cosecha exitosa.
type HarvestResult struct {
	Breeds       []Breed
	Degradations []Degradation
}

// Harvester orquesta fetch -> extract -> normalize sobre una única página.
type Harvester struct {
	fetcher   Fetcher
	sourceURL string
	log       logger.Logger
	now       func() time.Time
}

func NewHarvester(fetcher Fetcher, sourceURL string, log logger.Logger) *Harvester {
	if log == nil {
		log = logger.Nop()
	}
	return &Harvester{
		fetcher:   fetcher,
		sourceURL: sourceURL,
		log:       log.With(map[string]any{"component": "harvester"}),
		now:       time.Now,
	}
}

// Harvest no tiene efectos más allá del GET a la fuente.
// Un fallo de fetch o parseo devuelve *FetchError y ningún resultado parcial;
// las filas mal formadas se descartan y quedan en Degradations.
func (h *Harvester) Harvest(ctx context.Context) (HarvestResult, error) {
	body, err := h.fetcher.Fetch(ctx, h.sourceURL)
	if err != nil {
		return HarvestResult{}, &FetchError{URL: h.sourceURL, Stage: "fetch", Err: err}
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return HarvestResult{}, &FetchError{URL: h.sourceURL, Stage: "parse", Err: err}
	}

	res := HarvestResult{
		Breeds:       make([]Breed, 0),
		Degradations: make([]Degradation, 0),
	}

	onDegraded := func(d Degradation) {
		h.log.Warn("row skipped", map[string]any{
			"group":  d.Group,
			"row":    d.Row,
			"slots":  d.Slots,
			"reason": d.Reason,
		})
		res.Degradations = append(res.Degradations, d)
	}

	now := h.now()
	for raw := range Extract(doc, onDegraded) {
		res.Breeds = append(res.Breeds, Normalize(raw, now))
	}

	if len(res.Breeds) == 0 {
		h.log.Warn("harvest yielded 0 breeds; check if the page structure changed", map[string]any{
			"url": h.sourceURL,
		})
	} else {
		h.log.Info("harvest done", map[string]any{
			"breeds":  len(res.Breeds),
			"skipped": len(res.Degradations),
		})
	}

	return res, nil
}
