// Package prompt assembles the role-tagged message list sent to the
// completion service for the general chat path.
package prompt

import (
	"encoding/json"
	"regexp"
	"strings"

	"coverquote-be/pkg/llm"
	"coverquote-be/pkg/store"
)

// AgentInstruction is prepended to every system prompt.
const AgentInstruction = `CRITICAL FORMATTING RULE: Always use HTML tags for emphasis in your responses:
- Use <strong>text</strong> for bold (NEVER use **text**)
- Use <em>text</em> for italic (NEVER use *text*)
- Use proper HTML formatting throughout

You are an insurance agent who can quote and write personal lines policies.
Be concise. Ask only one question per turn.`

// PhrasingSystemBase constrains the single-question phrasing calls used by
// the umbrella flow.
const PhrasingSystemBase = "You are Polly, a friendly insurance assistant. " +
	"Output ONE short message (1-2 sentences). " +
	"If the user is in an 'umbrella quote' flow, do not change topics or add extra questions. " +
	"Ask only the next required question."

// WithInstruction joins the agent instruction with additional sections.
func WithInstruction(sections ...string) string {
	var kept []string
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return AgentInstruction + "\n\n" + strings.Join(kept, "\n")
}

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+?)\*`)
)

// ConvertMarkdownToHTML rewrites markdown bold/italic markers to the inline
// HTML the frontend renders.
func ConvertMarkdownToHTML(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	return italicPattern.ReplaceAllString(text, "<em>$1</em>")
}

// Builder assembles the message list for one general-path turn.
type Builder struct {
	session       *store.Session
	userMessage   string
	retrieved     []string
	allowFallback bool
	jurisdiction  string
}

func NewBuilder(session *store.Session, userMessage string, retrieved []string, allowFallback bool, jurisdiction string) *Builder {
	return &Builder{
		session:       session,
		userMessage:   userMessage,
		retrieved:     retrieved,
		allowFallback: allowFallback,
		jurisdiction:  jurisdiction,
	}
}

// Build returns the full role-tagged message list.
func (b *Builder) Build() []llm.Message {
	systemBase := WithInstruction(
		"You are Polly, a helpful insurance assistant.",
		"Use light HTML (<h4>, <ul><li>, <table>, <strong>, <em>).",
		"NEVER use markdown asterisks (**) - always use HTML tags.",
		"Do not provide binding quotes; final premiums depend on carriers.",
	)

	return []llm.Message{
		{Role: "system", Content: systemBase + "\n" + b.groundingRules()},
		{Role: "system", Content: "BEHAVIOR RULES:\n1) One question per turn.\n2) Stay in active flow if any.\n3) Use specific policy details when advising.\n4) If unsure, ask a short clarifying question."},
		{Role: "system", Content: b.profileBlock()},
		{Role: "system", Content: b.declarationsBlock()},
		{Role: "system", Content: b.guidelinesBlock()},
		{Role: "system", Content: "RUNNING SUMMARY:\n" + clip(b.session.RunningSummary, 2000)},
		{Role: "user", Content: b.userMessage},
	}
}

func (b *Builder) groundingRules() string {
	if b.allowFallback && b.jurisdiction != "" {
		return "RAG-GROUNDING:\n" +
			"- Use 'RETRIEVED GUIDELINES' as the authoritative source when available.\n" +
			"- If the retrieved text does not contain the requested fact for the specified state, " +
			"you MAY use your general knowledge as a fallback, but you MUST:\n" +
			"  - Limit the fallback strictly to the state: " + b.jurisdiction + ".\n" +
			"  - State that this is a best-effort fallback and may be outdated.\n" +
			"  - Prompt the user to confirm or provide a declarations page for verification.\n" +
			"- If pretraining conflicts with retrieved text, DEFER to the retrieved text.\n" +
			"- Never invent precise numbers without saying they are estimates if coming from fallback."
	}
	return "RAG-GROUNDING:\n" +
		"- The content under 'RETRIEVED GUIDELINES' is the ONLY authoritative source for state rules/limits.\n" +
		"- If pretraining/your memory conflicts with it, DEFER to the retrieved text.\n" +
		"- If the retrieved text lacks the requested fact, say: " +
		"'<em>I don't see that specific item in the current state guidelines.</em>' " +
		"and offer next steps. Do NOT guess values."
}

func (b *Builder) profileBlock() string {
	p := b.session.Profile
	var sb strings.Builder
	sb.WriteString("USER PROFILE:\n")
	sb.WriteString("- Name: " + p.Name + "\n")
	sb.WriteString("- State: " + p.Jurisdiction + "\n")
	if p.HomeOwned {
		sb.WriteString("- Home owned: true\n")
	} else {
		sb.WriteString("- Home owned: false\n")
	}
	sb.WriteString("- Asset band: " + p.AssetBand + "\n")
	sb.WriteString("- Tone: " + p.PreferredTone + "\n")
	return sb.String()
}

func (b *Builder) declarationsBlock() string {
	structured := "{}"
	if b.session.Extraction != nil {
		if raw, err := json.Marshal(b.session.Extraction); err == nil {
			structured = string(raw)
		}
	}
	return "DECLARATIONS CONTEXT (if present):\n- Structured: " + clip(structured, 2000) + "\n"
}

func (b *Builder) guidelinesBlock() string {
	if len(b.retrieved) == 0 {
		return "RETRIEVED GUIDELINES: <none>"
	}
	var sb strings.Builder
	sb.WriteString("RETRIEVED GUIDELINES (authoritative):\n")
	for _, c := range b.retrieved {
		sb.WriteString("- " + clip(c, 300) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
