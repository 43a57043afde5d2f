package domain

import "fmt"

// LookupKind names one of the small reference tables movies point at.
type LookupKind string

const (
	LookupGenre          LookupKind = "genre"
	LookupCountry        LookupKind = "country"
	LookupLanguage       LookupKind = "language"
	LookupClassification LookupKind = "classification"
)

// LookupKinds lists every kind in a stable order.
var LookupKinds = []LookupKind{LookupGenre, LookupCountry, LookupLanguage, LookupClassification}

// ParseLookupKind validates s against the known kinds.
func ParseLookupKind(s string) (LookupKind, error) {
	for _, k := range LookupKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown lookup kind %q", s)
}

// Table is the table backing the kind. Kinds are closed so this is safe to
// splice into SQL.
func (k LookupKind) Table() string { return string(k) }

// IDColumn and NameColumn follow the <kind>_id / <kind>_name convention.
func (k LookupKind) IDColumn() string   { return string(k) + "_id" }
func (k LookupKind) NameColumn() string { return string(k) + "_name" }

// Lookup is a row of any lookup table.
type Lookup struct {
	Kind LookupKind
	ID   int64
	Name string
}

type Movie struct {
	ID                  int64
	DistributionTitle   string
	OriginalTitle       string
	OriginalLanguage    string
	HasSpanishSubtitles bool
	ProductionYear      int
	WebsiteURL          string
	ImageURL            string
	DurationHours       int
	Summary             *string
	Classification      string
}

// BasicMovie is the card view used by listing pages.
type BasicMovie struct {
	ID                int64
	DistributionTitle string
	ImageURL          string
}

// MovieRecord is a movie ready to insert, with every reference resolved to
// an id.
type MovieRecord struct {
	DistributionTitle   string
	OriginalTitle       string
	OriginalLanguageID  int64
	HasSpanishSubtitles bool
	ProductionYear      int
	WebsiteURL          string
	ImageURL            string
	DurationHours       int
	Summary             *string
	ClassificationID    int64
	OriginCountryID     int64
	GenreID             int64
}
