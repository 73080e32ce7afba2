package models

// Turn roles in a negotiation exchange.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// NegotiationTurn is one message in the negotiation chat. The full history is
// owned by the caller and resubmitted on every request; the server holds no
// session state and only appends turns.
type NegotiationTurn struct {
	Role  string   `json:"role"`
	Parts []string `json:"parts"`
}

// NewTurn builds a single-part turn.
func NewTurn(role, message string) NegotiationTurn {
	return NegotiationTurn{Role: role, Parts: []string{message}}
}

// Message returns the concatenated text of the turn's parts.
func (t NegotiationTurn) Message() string {
	if len(t.Parts) == 1 {
		return t.Parts[0]
	}
	var out string
	for _, p := range t.Parts {
		out += p
	}
	return out
}
