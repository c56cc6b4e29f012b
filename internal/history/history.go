// Package history models the short conversation context the engine keeps
// per request. The caller owns persistence; this package only windows,
// truncates and inspects the turns it is handed.
package history

import "strings"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation.
type Turn struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	UserName string `json:"user_name,omitempty"`
}

// IsUser reports whether the turn was sent by the user. Legacy clients
// send "usuario" as the role.
func (t Turn) IsUser() bool {
	return t.Role == RoleUser || t.Role == "usuario"
}

// Window returns at most n of the latest turns, each with its content
// truncated to maxLen runes. The input slice is not modified.
func Window(turns []Turn, n, maxLen int) []Turn {
	if n <= 0 || len(turns) == 0 {
		return nil
	}
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]Turn, len(turns))
	for i, t := range turns {
		t.Content = Truncate(t.Content, maxLen)
		out[i] = t
	}
	return out
}

// Truncate cuts s to at most maxLen runes. maxLen <= 0 disables the cut.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// UserName walks the turns latest-first and returns the first name of
// the most recent user turn that carries one. Empty when no turn does.
func UserName(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if !t.IsUser() || t.UserName == "" {
			continue
		}
		fields := strings.Fields(t.UserName)
		if len(fields) == 0 {
			continue
		}
		return fields[0]
	}
	return ""
}
