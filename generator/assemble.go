package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformed marks a completed stream whose accumulated text is not valid
// JSON for the declared schema. It is kept distinct from upstream transport
// errors so the caller can word the two failures differently.
var ErrMalformed = errors.New("response was interrupted or malformed")

// ModelError carries an error the model itself reported via the top-level
// "error" field of an otherwise well-formed response (typically a content
// safety refusal). The message is surfaced to the user verbatim.
type ModelError struct {
	Message string
}

func (e *ModelError) Error() string {
	return e.Message
}

type rawResponse struct {
	Scripts []rawScript `json:"scripts"`
	Error   string      `json:"error"`
}

type rawScript struct {
	Style             string `json:"style"`
	Duration          string `json:"duration"`
	Hook              string `json:"hook"`
	MainScript        string `json:"mainScript"`
	OnScreenText      string `json:"onScreenText"`
	CTA               string `json:"cta"`
	StrategicAnalysis string `json:"strategicAnalysis"`
}

// Collect drains a fragment sequence into one buffer. onFragment, when non-nil,
// observes the growing text for live display. The first error ends collection;
// fragments already appended are kept so the caller can show partial text.
func Collect(fragments iter.Seq2[string, error], onFragment func(total string)) (string, error) {
	var sb strings.Builder
	for fragment, err := range fragments {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(fragment)
		if onFragment != nil {
			onFragment(sb.String())
		}
	}
	return sb.String(), nil
}

// Assemble parses the fully accumulated stream text into the ordered result
// set. Each entry gets a fresh local identifier and a sequential "Script N"
// title in array order. An empty scripts array is valid and yields an empty
// set; a populated model error field takes precedence over the scripts.
func Assemble(raw string) ([]ScriptIdea, error) {
	var resp rawResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if resp.Error != "" {
		return nil, &ModelError{Message: resp.Error}
	}

	ideas := make([]ScriptIdea, 0, len(resp.Scripts))
	for i, s := range resp.Scripts {
		ideas = append(ideas, ScriptIdea{
			ID:                uuid.NewString(),
			Title:             fmt.Sprintf("Script %d", i+1),
			Style:             s.Style,
			Duration:          s.Duration,
			Hook:              s.Hook,
			MainScript:        s.MainScript,
			OnScreenText:      s.OnScreenText,
			CTA:               s.CTA,
			StrategicAnalysis: s.StrategicAnalysis,
		})
	}
	return ideas, nil
}
