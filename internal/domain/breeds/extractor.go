package breeds

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectores del documento fuente.
const (
	groupSelector   = ".NavFrame"
	contentSelector = ".NavContent"
)

// Slot es la posición de cada celda dentro de una fila.
type Slot int

const (
	SlotName Slot = iota
	SlotOrigin
	SlotMeaning
	SlotAncestry
	SlotFCI
	SlotImage

	slotCount = int(SlotImage) + 1
)

// headerLabels son los títulos de columna; una fila que repite cualquiera
// de ellos es la cabecera de la tabla.
var headerLabels = map[Slot]string{
	SlotName:     "Raça",
	SlotOrigin:   "País origem",
	SlotMeaning:  "Significado",
	SlotAncestry: "Ancestrais",
	SlotFCI:      "Classificação FCI",
}

// Degradation describe una fila que no se pudo extraer.
type Degradation struct {
	Group  int    `json:"group"`
	Row    int    `json:"row"`
	Slots  int    `json:"slots"`
	Reason string `json:"reason"`
}

const ReasonSlotCount = "unexpected slot count"

// Extract recorre los grupos colapsables del documento y produce una
// entrada cruda por fila, en orden de documento.
// Las filas con menos de seis celdas no se emiten; se informan a degraded (si no es nil).
func Extract(doc *goquery.Document, degraded func(Degradation)) iter.Seq[RawEntry] {
	return func(yield func(RawEntry) bool) {
		if doc == nil {
			return
		}

		groups := doc.Find(groupSelector)
		for g := range groups.Length() {
			tables := groups.Eq(g).ChildrenFiltered(contentSelector).Children()

			row := 0
			for t := range tables.Length() {
				rows := tables.Eq(t).Children().First().Children()

				for r := range rows.Length() {
					slots := rows.Eq(r).Children()
					idx := row
					row++

					if slots.Length() < slotCount {
						if degraded != nil {
							degraded(Degradation{Group: g, Row: idx, Slots: slots.Length(), Reason: ReasonSlotCount})
						}
						continue
					}

					if isHeaderRow(slots) {
						continue
					}

					if !yield(readRow(slots, g, idx)) {
						return
					}
				}
			}
		}
	}
}

func slotText(slots *goquery.Selection, s Slot) string {
	return strings.TrimSpace(slots.Eq(int(s)).Text())
}

func isHeaderRow(slots *goquery.Selection) bool {
	for s, label := range headerLabels {
		if slotText(slots, s) == label {
			return true
		}
	}
	return false
}

func readRow(slots *goquery.Selection, group, row int) RawEntry {
	origin := slots.Eq(int(SlotOrigin))
	countries := CollectCountries(origin)

	href, hasHref := slots.Eq(int(SlotName)).Children().First().Attr("href")
	src, hasImage := slots.Eq(int(SlotImage)).Find("img").First().Attr("src")

	return RawEntry{
		Group:     group,
		Row:       row,
		Name:      slotText(slots, SlotName),
		Href:      href,
		HasHref:   hasHref,
		Countries: countries,
		Meaning:   slotText(slots, SlotMeaning),
		Ancestry:  slotText(slots, SlotAncestry),
		FCI:       slotText(slots, SlotFCI),
		ImageSrc:  src,
		HasImage:  hasImage,
	}
}
