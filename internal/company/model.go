package company

// Company holds the manufacturer record together with its "Polish-ness"
// scores. Every score is 0..100 or nil when not yet evaluated; a score and
// its notes field are always set (or unset) together.
type Company struct {
	ID                         int     `json:"id"`
	Name                       *string `json:"name"`
	OfficialName               *string `json:"officialName"`
	CommonName                 *string `json:"commonName"`
	BusinessID                 *string `json:"-"`
	Description                *string `json:"description"`
	OfficialURL                *string `json:"officialUrl"`
	LogotypeKey                *string `json:"-"`
	IsFriend                   bool    `json:"isFriend"`
	DisplayBrandsInDescription bool    `json:"-"`
	PlCapital                  *int    `json:"plCapital"`
	PlCapitalNotes             *string `json:"plCapitalNotes"`
	PlNotGlobEnt               *int    `json:"plNotGlobEnt"`
	PlNotGlobEntNotes          *string `json:"plNotGlobEntNotes"`
	PlRegistered               *int    `json:"plRegistered"`
	PlRegisteredNotes          *string `json:"plRegisteredNotes"`
	PlRnD                      *int    `json:"plRnD"`
	PlRnDNotes                 *string `json:"plRnDNotes"`
	PlWorkers                  *int    `json:"plWorkers"`
	PlWorkersNotes             *string `json:"plWorkersNotes"`
	PlScore                    *int    `json:"plScore"`
}

// DisplayName picks the first non-empty of common name, official name, name.
func (c *Company) DisplayName() string {
	for _, candidate := range []*string{c.CommonName, c.OfficialName, c.Name} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}

	return ""
}

type Brand struct {
	ID         int      `json:"id"`
	CompanyID  int      `json:"-"`
	Company    *Company `json:"-"`
	Name       *string  `json:"name"`
	CommonName *string  `json:"commonName"`
	WebsiteURL *string  `json:"websiteUrl"`
}

// DisplayName picks the first non-empty of common name, name.
func (b *Brand) DisplayName() string {
	for _, candidate := range []*string{b.CommonName, b.Name} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}

	return ""
}
