package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"coverquote-be/pkg/store"
)

func TestConvertMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bold", in: "a **bold** word", want: "a <strong>bold</strong> word"},
		{name: "italic", in: "an *italic* word", want: "an <em>italic</em> word"},
		{name: "bold then italic", in: "**b** and *i*", want: "<strong>b</strong> and <em>i</em>"},
		{name: "multiple bold", in: "**x** then **y**", want: "<strong>x</strong> then <strong>y</strong>"},
		{name: "plain text untouched", in: "<p>already html</p>", want: "<p>already html</p>"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertMarkdownToHTML(tt.in); got != tt.want {
				t.Errorf("ConvertMarkdownToHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildMessageShape(t *testing.T) {
	sess := store.NewSession("s1")
	sess.Profile = store.UserProfile{Name: "Ada", Jurisdiction: "MA", HomeOwned: true}
	sess.RunningSummary = "\n- U: hi | A: hello"

	msgs := NewBuilder(sess, "what is my PD limit?", []string{"[MA:g.md#0]\nPart 4 rules."}, false, "MA").Build()

	if len(msgs) != 7 {
		t.Fatalf("want 7 messages, got %d", len(msgs))
	}
	for i := 0; i < 6; i++ {
		if msgs[i].Role != "system" {
			t.Errorf("message %d role = %q, want system", i, msgs[i].Role)
		}
	}
	if msgs[6].Role != "user" || msgs[6].Content != "what is my PD limit?" {
		t.Errorf("last message should carry the user text, got %+v", msgs[6])
	}

	if !strings.Contains(msgs[0].Content, "ONLY authoritative source") {
		t.Error("strict grounding rules missing when fallback disallowed")
	}
	if !strings.Contains(msgs[2].Content, "- Name: Ada") || !strings.Contains(msgs[2].Content, "- State: MA") {
		t.Errorf("profile block incomplete: %q", msgs[2].Content)
	}
	if !strings.Contains(msgs[4].Content, "RETRIEVED GUIDELINES (authoritative):") {
		t.Errorf("guidelines block missing: %q", msgs[4].Content)
	}
}

func TestBuildFallbackRules(t *testing.T) {
	sess := store.NewSession("s1")

	msgs := NewBuilder(sess, "PD minimum?", nil, true, "MA").Build()
	if !strings.Contains(msgs[0].Content, "Limit the fallback strictly to the state: MA") {
		t.Error("fallback rules should scope to the jurisdiction")
	}
	if !strings.Contains(msgs[4].Content, "RETRIEVED GUIDELINES: <none>") {
		t.Errorf("empty retrieval should be explicit: %q", msgs[4].Content)
	}

	// fallback without a known jurisdiction stays strict
	msgs = NewBuilder(sess, "PD minimum?", nil, true, "").Build()
	if !strings.Contains(msgs[0].Content, "ONLY authoritative source") {
		t.Error("missing jurisdiction must force strict grounding")
	}
}

func TestGuidelinesBlockClipsChunks(t *testing.T) {
	long := strings.Repeat("x", 500)
	b := NewBuilder(store.NewSession("s1"), "q", []string{long}, false, "MA")

	block := b.guidelinesBlock()
	if strings.Contains(block, strings.Repeat("x", 301)) {
		t.Error("chunk should be clipped to 300 characters")
	}
}

func TestGuidelinesBlockClipsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 400)
	b := NewBuilder(store.NewSession("s1"), "q", []string{long}, false, "MA")

	block := b.guidelinesBlock()
	if !utf8.ValidString(block) {
		t.Fatalf("guidelines block contains invalid UTF-8: %q", block)
	}
	if !strings.Contains(block, strings.Repeat("é", 300)) {
		t.Error("chunk should keep 300 full characters")
	}
	if strings.Contains(block, strings.Repeat("é", 301)) {
		t.Error("chunk should be clipped to 300 characters")
	}
}
