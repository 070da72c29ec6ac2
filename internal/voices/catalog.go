// Package voices holds the fixed PlayAI voice and model catalog served to the
// companion page.
package voices

const (
	DefaultModel = "playai-tts"
	ArabicModel  = "playai-tts-arabic"
	DefaultVoice = "Fritz-PlayAI"
)

var english = []string{
	"Arista-PlayAI", "Atlas-PlayAI", "Basil-PlayAI", "Briggs-PlayAI",
	"Calum-PlayAI", "Celeste-PlayAI", "Cheyenne-PlayAI", "Chip-PlayAI",
	"Cillian-PlayAI", "Deedee-PlayAI", "Fritz-PlayAI", "Gail-PlayAI",
	"Indigo-PlayAI", "Mamaw-PlayAI", "Mason-PlayAI", "Mikail-PlayAI",
	"Mitch-PlayAI", "Quinn-PlayAI", "Thunder-PlayAI",
}

var arabic = []string{
	"Ahmad-PlayAI", "Amira-PlayAI", "Khalid-PlayAI", "Nasser-PlayAI",
}

// Catalog groups voice identifiers by language.
type Catalog struct {
	English []string `json:"english"`
	Arabic  []string `json:"arabic"`
}

// ModelInfo ties a provider model to the voice group it speaks with.
type ModelInfo struct {
	ID       string   `json:"id"`
	Language string   `json:"language"`
	Default  bool     `json:"default,omitempty"`
	Voices   []string `json:"voices"`
}

// All returns a copy of the catalog; callers may not mutate the package lists.
func All() Catalog {
	return Catalog{
		English: append([]string(nil), english...),
		Arabic:  append([]string(nil), arabic...),
	}
}

// Models lists the supported models with the voices each one accepts.
func Models() []ModelInfo {
	return []ModelInfo{
		{ID: DefaultModel, Language: "english", Default: true, Voices: ForModel(DefaultModel)},
		{ID: ArabicModel, Language: "arabic", Voices: ForModel(ArabicModel)},
	}
}

// ForModel returns the voices that belong to model, or nil if unknown.
func ForModel(model string) []string {
	switch model {
	case DefaultModel:
		return append([]string(nil), english...)
	case ArabicModel:
		return append([]string(nil), arabic...)
	}
	return nil
}
