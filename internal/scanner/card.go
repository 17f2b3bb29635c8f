package scanner

// ResultCard is the flat payload rendered to the mobile client. Cards built
// from static copy carry the base key set only; company cards additionally
// carry description, is_friend, sources and, when present, replacements.
type ResultCard map[string]any

// AnalyticsFlags are derived per scan and never persisted.
type AnalyticsFlags struct {
	Was590      bool `json:"was_590"`
	WasPlScore  bool `json:"was_plScore"`
	WasVerified bool `json:"was_verified"`
}

// Replacement is a display-ready summary of one suggested substitute.
type Replacement struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	DisplayName string `json:"display_name"`
	IsFriend    bool   `json:"is_friend"`
}
