package entities

// TraceSource is the channel a client agreement was captured through.

type TraceSource string

const (
	TraceSourceMeeting TraceSource = "meeting"
	TraceSourceEmail   TraceSource = "email"
	TraceSourceCall    TraceSource = "call"
)

// Valid reports whether s is one of the known source channels.
func (s TraceSource) Valid() bool {
	switch s {
	case TraceSourceMeeting, TraceSourceEmail, TraceSourceCall:
		return true
	}
	return false
}

// AgreementTrace records what was agreed with a client, enriched with an
// AI-produced summary.
//
// Invariants:
//   - Summary is always populated: either a genuine analysis result or the
//     fixed failure placeholder, never empty.
//   - Content keeps the raw note text verbatim, independent of whether the
//     analysis succeeded.
//   - ClientID is a soft reference; display degrades to a placeholder when
//     it resolves to nothing.
type AgreementTrace struct {
	ID       string      `json:"id"`
	ClientID string      `json:"clientId"`
	Date     string      `json:"date"`
	Content  string      `json:"content"`
	Source   TraceSource `json:"source"`
	Summary  string      `json:"summary"`
}

// AgreementAnalysis is the structured result of the AI analyzer.
type AgreementAnalysis struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems,omitempty"`
}
