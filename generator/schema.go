package generator

import "google.golang.org/genai"

// ResponseSchema declares the structured output the model must produce:
// an object with a required "scripts" array and an optional top-level "error"
// string the model populates when it refuses the request. When includeAnalysis
// is set, each script additionally carries a required strategicAnalysis field.
func ResponseSchema(includeAnalysis bool) *genai.Schema {
	scriptProps := map[string]*genai.Schema{
		"style": {
			Type:        genai.TypeString,
			Description: "The name of the hook style used. If a specific style was requested (e.g. Curious, Shocking, Emotional), this MUST match that style exactly for all generated scripts.",
		},
		"duration": {
			Type:        genai.TypeString,
			Description: "Video Duration e.g. 15s",
		},
		"hook": {
			Type:        genai.TypeString,
			Description: "Scroll-stopping first line",
		},
		"mainScript": {
			Type:        genai.TypeString,
			Description: "Final ready-to-use voiceover text (No emojis)",
		},
		"onScreenText": {
			Type:        genai.TypeString,
			Description: "Text overlay for the screen",
		},
		"cta": {
			Type:        genai.TypeString,
			Description: "The final closing line/call to action",
		},
	}
	required := []string{"style", "duration", "hook", "mainScript", "onScreenText", "cta"}

	if includeAnalysis {
		scriptProps["strategicAnalysis"] = &genai.Schema{
			Type:        genai.TypeString,
			Description: "Deep psychological explanation of why this specific script is engineered to go viral.",
		}
		required = append(required, "strategicAnalysis")
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scripts": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: scriptProps,
					Required:   required,
				},
			},
			"error": {
				Type:        genai.TypeString,
				Description: "Error message if the request is unsafe.",
			},
		},
		Required: []string{"scripts"},
	}
}
