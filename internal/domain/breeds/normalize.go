package breeds

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	WikiOrigin   = "https://pt.wikipedia.org"
	NotFound     = "Não encontrado"
	ImageWidth   = "950px"
	imageScheme  = "https:"
	lastUpdateTS = "2006-01-02T15:04:05.000Z"
)

var (
	// \s de RE2 es solo ASCII; sumamos los espacios unicode que aparecen en wikitext (nbsp, thin space...).
	runsOfSpace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]{2,}`)
	widthInURL  = regexp.MustCompile(`\d+px`)
)

// CollapseWhitespace recorta extremos, elimina saltos de línea y colapsa
// cualquier secuencia de espacios en uno solo.
func CollapseWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", "")
	return runsOfSpace.ReplaceAllString(s, " ")
}

// CleanMeaning es CollapseWhitespace sin comillas dobles.
func CleanMeaning(s string) string {
	return CollapseWhitespace(strings.ReplaceAll(s, `"`, ""))
}

// ResolveWikiURL completa un href relativo con el origen del sitio.
// Sin href devuelve el sentinel NotFound.
func ResolveWikiURL(href string, ok bool) string {
	if !ok {
		return NotFound
	}
	return WikiOrigin + href
}

// ResolveImageURL completa un src protocol-relative ("//upload...") con https.
func ResolveImageURL(src string, ok bool) string {
	if !ok || src == "" {
		return ""
	}
	return imageScheme + src
}

// NormalizeImageWidth reescribe cada "<n>px" del path de la miniatura a 950px.
func NormalizeImageWidth(url string) string {
	return widthInURL.ReplaceAllString(url, ImageWidth)
}

// CollectCountries recorre los hijos de la celda de origen en orden de
// documento y descarta los que quedan vacíos.
func CollectCountries(cell *goquery.Selection) []string {
	out := make([]string, 0)
	if cell == nil {
		return out
	}
	cell.Children().Each(func(_ int, s *goquery.Selection) {
		if text := CollapseWhitespace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// Normalize arma el registro final a partir de una fila cruda.
// Es determinística salvo Extra.LastUpdate, que toma now en UTC.
func Normalize(raw RawEntry, now time.Time) Breed {
	img := ResolveImageURL(raw.ImageSrc, raw.HasImage)

	countries := make([]string, 0, len(raw.Countries))
	for _, c := range raw.Countries {
		if c = CollapseWhitespace(c); c != "" {
			countries = append(countries, c)
		}
	}

	return Breed{
		Description:       CollapseWhitespace(raw.Name),
		AnimalType:        AnimalTypeDog,
		WikiURL:           ResolveWikiURL(raw.Href, raw.HasHref),
		Meaning:           CleanMeaning(raw.Meaning),
		FCIClassification: CollapseWhitespace(raw.FCI),
		Extra: Extra{
			KnownCountries: countries,
			Ancestry:       CollapseWhitespace(raw.Ancestry),
			ImageURL: ImageURL{
				Original:   img,
				Normalized: NormalizeImageWidth(img),
			},
			LastUpdate: now.UTC().Format(lastUpdateTS),
		},
	}
}
