package models

// DefaultTicker is selected for a session that has never submitted a symbol.
const DefaultTicker = "AAPL"

// SessionState is the per-browser-session UI state.
type SessionState struct {
	SelectedTicker string `json:"selected_ticker"`
}

func NewSessionState() SessionState {
	return SessionState{SelectedTicker: DefaultTicker}
}
