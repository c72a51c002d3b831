package generator

// HookStyle is the opening-line strategy requested for a script. StyleAuto
// lets the model pick a style per script and report its choice.
type HookStyle string

const (
	StyleCurious   HookStyle = "Curious"
	StyleShocking  HookStyle = "Shocking"
	StyleEmotional HookStyle = "Emotional"
	StyleAuto      HookStyle = "Auto"
)

var HookStyles = []HookStyle{StyleCurious, StyleShocking, StyleEmotional, StyleAuto}

type Niche string

var Niches = []Niche{
	"Business", "Tech", "Motivation", "Humor", "Lifestyle", "Travel",
	"Fitness", "Generic", "Story", "Finance", "Food", "Education", "Other",
}

type Platform string

var Platforms = []Platform{"Instagram", "TikTok", "YouTube Shorts"}

type Tone string

var Tones = []Tone{"Motivational", "Educational", "Shocking", "Funny", "Emotional", "Relatable"}

type Language string

var Languages = []Language{"English", "Spanish", "French", "German", "Hindi", "Hinglish"}

var Durations = []string{"15s", "30s", "45s", "60s", "Viral Length (Auto)"}

// GenerationConfig describes one generation request. It is plain data; the
// plan/count invariant is enforced by the orchestrator before dispatch.
type GenerationConfig struct {
	Niche        Niche     `json:"niche"`
	AudienceType string    `json:"audienceType"`
	Platform     Platform  `json:"platform"`
	Tone         Tone      `json:"tone"`
	Language     Language  `json:"language"`
	HookStyle    HookStyle `json:"hookStyle"`
	Duration     string    `json:"duration"`
	Count        int       `json:"count"`
	Plan         string    `json:"plan"`
}

// DefaultConfig mirrors the defaults the generation form starts with.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Niche:        "Other",
		AudienceType: "",
		Platform:     "Instagram",
		Tone:         "Relatable",
		Language:     "English",
		HookStyle:    StyleAuto,
		Duration:     "30s",
		Count:        1,
		Plan:         "Free",
	}
}

// ScriptIdea is one generated short-form video script. ID is generated locally
// and is unique within a session only; Title is the sequential "Script N"
// label assigned in array order.
type ScriptIdea struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Style             string `json:"style"`
	Duration          string `json:"duration"`
	Hook              string `json:"hook"`
	MainScript        string `json:"mainScript"`
	OnScreenText      string `json:"onScreenText"`
	CTA               string `json:"cta"`
	StrategicAnalysis string `json:"strategicAnalysis,omitempty"`
}
