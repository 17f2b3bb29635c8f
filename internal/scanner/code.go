package scanner

// CodeKind is the classification of a scanned barcode. The dispatch over
// kinds is closed: every kind maps to exactly one card-building branch.
type CodeKind int

const (
	KindInvalid CodeKind = iota
	KindBook
	KindSanctionedCountry
	KindFlaggedCountry
	KindInternal
	KindProduct
)

// Classification is the outcome of inspecting a raw code. Country is set
// only for the two country kinds.
type Classification struct {
	Kind    CodeKind
	Country string
}

// GS1 prefix allocated to Poland.
const polandPrefix = "590"

const internalPrefix = "000"

// ISBN/ISSN/ISMN ranges.
var bookPrefixes = []string{"977", "978", "979"}

// Countries that invaded Ukraine; their cards carry an extra warning.
var sanctionedCountries = map[string]string{
	"481": "Białoruś",
	"462": "Federacja Rosyjska",
}

var flaggedCountries = map[string]string{
	"775": "Peru",
	"777": "Boliwia",
	"779": "Argentyna",
}

// Classify maps a raw scanned code to its classification. Rules are ordered
// and first-match-wins; anything that is not a plausible EAN-8/EAN-13 is
// invalid.
func Classify(code string) Classification {
	if !IsValidEAN(code) {
		return Classification{Kind: KindInvalid}
	}

	for _, prefix := range bookPrefixes {
		if code[:3] == prefix {
			return Classification{Kind: KindBook}
		}
	}

	if country, ok := sanctionedCountries[code[:3]]; ok {
		return Classification{Kind: KindSanctionedCountry, Country: country}
	}

	if country, ok := flaggedCountries[code[:3]]; ok {
		return Classification{Kind: KindFlaggedCountry, Country: country}
	}

	if code[:3] == internalPrefix {
		return Classification{Kind: KindInternal}
	}

	return Classification{Kind: KindProduct}
}

// IsValidEAN reports whether code is digits-only of EAN-8 or EAN-13 length.
func IsValidEAN(code string) bool {
	if len(code) != 8 && len(code) != 13 {
		return false
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// IsPolish reports whether a valid code carries the Polish GS1 prefix.
func IsPolish(code string) bool {
	return IsValidEAN(code) && code[:3] == polandPrefix
}
