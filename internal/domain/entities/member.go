package entities

import "strings"

// Member is the association member being billed. Read-only for this service.
type Member struct {
	ID    string
	Name  string
	Email string
}

// SplitName returns first and last name as expected by the payer fields of
// the gateway. A single-token name repeats it as the last name.
func (m Member) SplitName() (first, last string) {
	parts := strings.Fields(m.Name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
