package jurisdiction

import (
	"testing"

	"coverquote-be/pkg/store"
)

func TestInferFromProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    string
	}{
		{name: "uppercase code", profile: "MA", want: "MA"},
		{name: "lowercase code", profile: "tx", want: "TX"},
		{name: "padded code", profile: "  ca ", want: "CA"},
		{name: "district of columbia", profile: "dc", want: "DC"},
		{name: "unknown code", profile: "ZZ", want: ""},
		{name: "full state name rejected", profile: "Texas", want: ""},
		{name: "empty", profile: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(store.UserProfile{Jurisdiction: tt.profile}, store.NewSession("s1"))
			if got != tt.want {
				t.Errorf("Infer(%q) = %q, want %q", tt.profile, got, tt.want)
			}
		})
	}
}

func TestInferAllRecognizedCodes(t *testing.T) {
	if len(Recognized) != 51 {
		t.Fatalf("Recognized has %d codes, want 51", len(Recognized))
	}
	for code := range Recognized {
		if got := Infer(store.UserProfile{Jurisdiction: code}, nil); got != code {
			t.Errorf("Infer(%q) = %q", code, got)
		}
	}
}

func TestInferFromExtractionAddress(t *testing.T) {
	sess := store.NewSession("s1")
	sess.Extraction = &store.Extraction{
		Insured: store.Insured{Address: "12 Main St, Boston, MA 02108"},
	}

	if got := Infer(store.UserProfile{}, sess); got != "MA" {
		t.Errorf("got %q, want MA", got)
	}

	// explicit profile wins over the extracted address
	if got := Infer(store.UserProfile{Jurisdiction: "TX"}, sess); got != "TX" {
		t.Errorf("got %q, want TX", got)
	}
}

func TestInferFromExtractedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "comma delimited", text: "mailing address: Austin, TX 75001", want: "TX"},
		{name: "zip plus four", text: "Austin, TX 75001-1234", want: "TX"},
		{name: "lowercase source text", text: "austin, tx 75001", want: "TX"},
		{name: "unrecognized code skipped", text: "Somewhere, XX 99999", want: ""},
		{name: "code without zip", text: "I live in TX", want: ""},
		{name: "no jurisdiction at all", text: "nothing to see here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := store.NewSession("s1")
			sess.ExtractedText = tt.text
			if got := Infer(store.UserProfile{}, sess); got != tt.want {
				t.Errorf("Infer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferNilSession(t *testing.T) {
	if got := Infer(store.UserProfile{}, nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestInferDebugTrace(t *testing.T) {
	sess := store.NewSession("s1")
	sess.ExtractedText = "Portland, OR 97201"

	code, trace := InferDebug(store.UserProfile{Jurisdiction: "nope"}, sess)
	if code != "OR" {
		t.Fatalf("code = %q, want OR", code)
	}
	if trace == "" {
		t.Fatal("expected a non-empty trace")
	}
}
