package generator

import "fmt"

const systemPrompt = `[SYSTEM PROMPT]
You are Hooklabe AI, a world-class short-form video content strategist and viral hook engineer.
Your goal is to engineer scripts that maximize watch time and scroll-stopping potential using specific psychological triggers.

Rules:
- Strictly no emojis in the script text.
- Sentences must be punchy, short, and conversational.
- The hook must occupy the first 3 seconds of value.
- Output MUST be valid JSON according to the schema.
- Content must be ELITE level (Pro-grade quality) regardless of the plan.`

const qualityPrompt = `[QUALITY PROTOCOL]
Apply ELITE psychological triggers. Use advanced marketing frameworks like AIDA (Attention, Interest, Desire, Action).
Provide deep strategic analysis including neuromarketing insights.
Every script must be engineered for maximum virality and retention.`

const autoStyleInstruction = "Since Hook Style is 'Auto', you MUST provide a diverse variety of viral hook styles for each script (e.g., mix Shocking, Curious, Emotional, Listicle, Challenge). For EACH script, you must define the 'style' field based on the specific psychological trigger you chose for that script."

// hookStyleInstruction renders the compliance block for the requested style.
// For anything other than Auto, the model is told to use exactly the requested
// style and to echo it verbatim in the 'style' field. This is a textual
// instruction only; the assembler tolerates a non-compliant model.
func hookStyleInstruction(style HookStyle) string {
	if style == StyleAuto {
		return autoStyleInstruction
	}
	return fmt.Sprintf(`STRICT REQUIREMENT: EVERY SINGLE script generated MUST use the '%[1]s' psychological hook style.
- If '%[1]s' is 'Curious', create information gaps and cliffhangers.
- If '%[1]s' is 'Shocking', create bold pattern interrupts and surprising claims.
- If '%[1]s' is 'Emotional', create deep empathy or relatable human feelings.
IMPORTANT: You MUST set the 'style' field in the JSON for EVERY script to be exactly: "%[1]s". No exceptions.`, style)
}

// BuildPrompt turns a GenerationConfig into the full instruction text sent to
// the model. Pure and deterministic: identical configs produce identical
// prompts.
func BuildPrompt(cfg GenerationConfig) string {
	topic := cfg.AudienceType
	if topic == "" {
		topic = "General growth in this niche"
	}

	userPrompt := fmt.Sprintf(`[BASE USER INPUT PROMPT]
Niche: %s
Topic: %s
Platform: %s
Tone: %s
Language: %s
Script Duration: %s
Hook Style Requested: %s

%s

Generate %d well-structured, high-performance script(s).`,
		cfg.Niche, topic, cfg.Platform, cfg.Tone, cfg.Language, cfg.Duration,
		cfg.HookStyle, hookStyleInstruction(cfg.HookStyle), cfg.Count)

	return systemPrompt + "\n\n" + qualityPrompt + "\n\n" + userPrompt
}
