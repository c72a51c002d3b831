package generator

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fragmentsOf(parts ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range parts {
			if !yield(p, nil) {
				return
			}
		}
	}
}

const twoScriptsJSON = `{"scripts":[
	{"style":"Curious","duration":"30s","hook":"h1","mainScript":"m1","onScreenText":"o1","cta":"c1","strategicAnalysis":"a1"},
	{"style":"Curious","duration":"30s","hook":"h2","mainScript":"m2","onScreenText":"o2","cta":"c2","strategicAnalysis":"a2"}
]}`

func TestCollectConcatenatesFragments(t *testing.T) {
	var seen []string
	full, err := Collect(fragmentsOf(`{"scripts"`, `:[]}`), func(total string) {
		seen = append(seen, total)
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"scripts":[]}`, full)
	assert.Equal(t, []string{`{"scripts"`, `{"scripts":[]}`}, seen)
}

func TestCollectStopsAtStreamError(t *testing.T) {
	upstream := errors.New("stream reset")
	seq := func(yield func(string, error) bool) {
		if !yield(`{"scr`, nil) {
			return
		}
		yield("", upstream)
	}

	full, err := Collect(seq, nil)
	assert.ErrorIs(t, err, upstream)
	// fragments already received are not retracted
	assert.Equal(t, `{"scr`, full)
}

func TestAssembleTwoScripts(t *testing.T) {
	ideas, err := Assemble(twoScriptsJSON)
	assert.NoError(t, err)
	assert.Len(t, ideas, 2)

	assert.Equal(t, "Script 1", ideas[0].Title)
	assert.Equal(t, "Script 2", ideas[1].Title)
	assert.Equal(t, "Curious", ideas[0].Style)
	assert.Equal(t, "h2", ideas[1].Hook)
	assert.Equal(t, "a1", ideas[0].StrategicAnalysis)

	assert.NotEmpty(t, ideas[0].ID)
	assert.NotEmpty(t, ideas[1].ID)
	assert.NotEqual(t, ideas[0].ID, ideas[1].ID)
}

func TestAssembleTruncatedJSONIsMalformed(t *testing.T) {
	ideas, err := Assemble(`{"scripts":[{"hook":"Wait`)
	assert.Nil(t, ideas)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestAssembleModelErrorSurfacedVerbatim(t *testing.T) {
	ideas, err := Assemble(`{"scripts":[],"error":"This request violates the content policy."}`)
	assert.Nil(t, ideas)

	var modelErr *ModelError
	assert.ErrorAs(t, err, &modelErr)
	assert.Equal(t, "This request violates the content policy.", modelErr.Message)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestAssembleEmptyScriptsIsValid(t *testing.T) {
	ideas, err := Assemble(`{"scripts":[]}`)
	assert.NoError(t, err)
	assert.NotNil(t, ideas)
	assert.Empty(t, ideas)
}

func TestAssembleSequentialTitles(t *testing.T) {
	raw := `{"scripts":[
		{"style":"Shocking","duration":"15s","hook":"a","mainScript":"b","onScreenText":"c","cta":"d"},
		{"style":"Emotional","duration":"15s","hook":"a","mainScript":"b","onScreenText":"c","cta":"d"},
		{"style":"Curious","duration":"15s","hook":"a","mainScript":"b","onScreenText":"c","cta":"d"}
	]}`
	ideas, err := Assemble(raw)
	assert.NoError(t, err)
	assert.Len(t, ideas, 3)
	for i, idea := range ideas {
		assert.Equal(t, "Script "+string(rune('1'+i)), idea.Title)
	}
	// insertion order = generation order
	assert.Equal(t, "Shocking", ideas[0].Style)
	assert.Equal(t, "Emotional", ideas[1].Style)
	assert.Equal(t, "Curious", ideas[2].Style)
}
