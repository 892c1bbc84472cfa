package uistate

// Session holds the process-wide UI state: the active tab and the current
// search term. Each field has a single writer path (its Set method).
type Session struct {
	ActiveTab  *Value[string]
	SearchTerm *Value[string]
}

// NewSession starts on the All tab with no search term. Changing tab resets
// the search term.
func NewSession() *Session {
	s := &Session{
		ActiveTab:  NewValue("All"),
		SearchTerm: NewValue(""),
	}
	s.ActiveTab.Subscribe(func(string) {
		s.SearchTerm.Set("")
	})
	return s
}
