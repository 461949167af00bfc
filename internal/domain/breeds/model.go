package breeds

// AnimalType es la etiqueta de especie que usa el catálogo.
type AnimalType int

const (
	AnimalTypeDog AnimalType = 1
)

// Breed es una raza tal como se cosecha y se persiste.
// Description es la clave de reconciliación entre la cosecha y el catálogo.
type Breed struct {
	// ID lo asigna el store al insertar; nunca se usa para matchear.
	ID string `json:"id,omitempty"`

	Description       string     `json:"description"`
	AnimalType        AnimalType `json:"animal_type"`
	WikiURL           string     `json:"wiki_url"`
	Meaning           string     `json:"meaning"`
	FCIClassification string     `json:"fci_classification"`
	Extra             Extra      `json:"extra"`
}

type Extra struct {
	KnownCountries []string `json:"known_countries"`
	Ancestry       string   `json:"ancestry"`
	ImageURL       ImageURL `json:"image_url"`
	LastUpdate     string   `json:"last_update"` // ISO-8601 UTC
}

type ImageURL struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// RawEntry son los campos crudos de una fila, antes de normalizar.
type RawEntry struct {
	Group int
	Row   int

	Name      string
	Href      string
	HasHref   bool
	Countries []string
	Meaning   string
	Ancestry  string
	FCI       string
	ImageSrc  string
	HasImage  bool
}
