package validators

import "strings"

// IsEmailWellFormed runs a cheap syntactic check on an optional client
// email. Reservation creation must stay a pure, offline code path, so no
// DNS verification here.
func IsEmailWellFormed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t\n")
}
