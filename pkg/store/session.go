package store

// Turn is a single entry in the conversation history.
type Turn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// UserProfile carries the caller-supplied facts used for prompting and
// jurisdiction inference.
type UserProfile struct {
	Name          string `json:"name"`
	Jurisdiction  string `json:"jurisdiction"`
	HomeOwned     bool   `json:"home_owned"`
	AssetBand     string `json:"asset_band"`
	PreferredTone string `json:"preferred_tone"`
}

// Insured holds the named-insured fields scraped from a declarations page.
type Insured struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PolicyInfo is the policy-level section of a declarations page.
type PolicyInfo struct {
	PolicyNumber    string `json:"policy_number,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	FullTermPremium string `json:"full_term_premium,omitempty"`
}

// Vehicle is one vehicle block scraped from a declarations page.
type Vehicle struct {
	Year                    string `json:"year"`
	Make                    string `json:"make"`
	Model                   string `json:"model"`
	VIN                     string `json:"vin"`
	VehiclePremium          string `json:"vehicle_premium"`
	BodilyInjury            string `json:"bodily_injury"`
	CollisionDeductible     string `json:"collision_deductible"`
	ComprehensiveDeductible string `json:"comprehensive_deductible"`
	RentalCoverage          string `json:"rental_coverage"`
	RoadsideAssistance      string `json:"roadside_assistance"`
	UninsuredMotorist       string `json:"uninsured_motorist"`
}

// Driver is one listed driver from a declarations page.
type Driver struct {
	DriverNumber string `json:"driver_number"`
	Name         string `json:"name"`
	DOB          string `json:"dob"`
}

// Extraction is the structured result of parsing a declarations page.
type Extraction struct {
	PolicyInfo PolicyInfo `json:"policy_info"`
	Insured    Insured    `json:"insured"`
	Vehicles   []Vehicle  `json:"vehicles"`
	Drivers    []Driver   `json:"drivers"`
}

// Flow tags for the active structured dialogue.
const (
	FlowNone     = ""
	FlowUmbrella = "umbrella"
)

// MaxHistoryTurns bounds the stored conversation history; oldest turns are
// evicted first.
const MaxHistoryTurns = 12

// Session is the per-conversation mutable state. Not safe for concurrent
// mutation; the caller guarantees at most one in-flight turn per session.
type Session struct {
	ID             string             `json:"id"`
	History        []Turn             `json:"history"`
	RunningSummary string             `json:"running_summary"`
	ActiveFlow     string             `json:"active_flow"`
	UmbrellaSlots  map[string]string  `json:"umbrella_slots"`
	Profile        UserProfile        `json:"profile"`
	ExtractedText  string             `json:"extracted_text"`
	Extraction     *Extraction        `json:"extraction,omitempty"`
	FakeQuotes     map[string]float64 `json:"fake_quotes,omitempty"`
	DecSummary     string             `json:"dec_summary,omitempty"`
}

// NewSession returns an empty session for the given id.
func NewSession(id string) *Session {
	return &Session{
		ID:            id,
		UmbrellaSlots: map[string]string{},
	}
}

// Append records a turn and evicts the oldest entries beyond MaxHistoryTurns.
func (s *Session) Append(role, text string) {
	s.History = append(s.History, Turn{Role: role, Text: text})
	if len(s.History) > MaxHistoryTurns {
		s.History = s.History[len(s.History)-MaxHistoryTurns:]
	}
}

// Summarize appends a truncated user/assistant pair to the rolling summary.
func (s *Session) Summarize(userText, assistantText string) {
	s.RunningSummary += "\n- U: " + clip(userText, 160) + " | A: " + clip(assistantText, 160)
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
