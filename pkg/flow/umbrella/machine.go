package umbrella

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"coverquote-be/internal/pkg/logger"
	"coverquote-be/pkg/llm"
	"coverquote-be/pkg/rag/prompt"
	"coverquote-be/pkg/store"
)

var triggerPattern = regexp.MustCompile(`(?i)\b(umbrella|pup|excess liability)\b`)

// ShouldEnter reports whether the message starts the umbrella flow.
func ShouldEnter(msg string) bool {
	return triggerPattern.MatchString(msg)
}

// StepResult is the outcome of one umbrella-flow turn.
type StepResult struct {
	Response string
	Done     bool // true when the estimate was emitted and the flow reset
}

// Machine advances the umbrella slot-filling dialogue one turn at a time.
type Machine struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewMachine(llmProvider llm.LLMProvider, log logger.ILogger) *Machine {
	return &Machine{llmProvider: llmProvider, log: log}
}

// Step absorbs slot answers from the message, then either asks the next
// missing question or, when every slot is filled, emits the estimate table
// and resets the session's flow state.
func (m *Machine) Step(ctx context.Context, sess *store.Session, msg string) StepResult {
	sess.UmbrellaSlots = Absorb(sess.UmbrellaSlots, msg)

	if missing := NextMissing(sess.UmbrellaSlots); missing != "" {
		question := m.phrase(ctx, sess.Profile.PreferredTone, Questions[missing])
		return StepResult{Response: question}
	}

	oneM, twoM := EstimatePremium(sess.UmbrellaSlots)
	sess.ActiveFlow = store.FlowNone

	html := "<h4>Umbrella Quote Estimate</h4>" +
		"<table><thead><tr><th>Limit</th><th>Estimated Annual Premium</th></tr></thead>" +
		fmt.Sprintf("<tbody><tr><td>$1,000,000</td><td>$%d</td></tr>", oneM) +
		fmt.Sprintf("<tr><td>$2,000,000</td><td>$%d</td></tr></tbody></table>", twoM) +
		"<p>Want me to generate a firm quote with specific carriers?</p>"
	return StepResult{Response: html, Done: true}
}

// phrase asks the completion service to restate the canonical question in
// the session tone, falling back to the literal question text on any error.
func (m *Machine) phrase(ctx context.Context, tone, question string) string {
	instruction := "Keep tone warm, professional, concise."
	if tone != "" {
		instruction = "Keep tone " + tone + "."
	}

	messages := []llm.Message{
		{Role: "system", Content: prompt.WithInstruction(prompt.PhrasingSystemBase, instruction)},
		{Role: "user", Content: question},
	}

	phrased, err := m.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.3), llm.WithMaxTokens(200))
	phrased = strings.TrimSpace(phrased)
	if err != nil || phrased == "" {
		if err != nil {
			m.log.Warn("umbrella", "phrasing failed, using canonical question", map[string]interface{}{"error": err.Error()})
		}
		return question
	}
	return phrased
}
