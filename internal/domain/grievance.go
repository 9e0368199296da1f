package domain

import "time"

// Display placeholders used when identity fields are absent.
const (
	AnonymousName = "Anonymous"
	HiddenEmail   = "Hidden"
)

// Grievance is the sole persisted entity. Name and Email are nil when the
// submitter chose anonymity or left them out.
type Grievance struct {
	ID        string
	Name      *string
	Email     *string
	Message   string
	Anonymous bool
	CreatedAt time.Time
}

// ApplyAnonymity clears identity fields on anonymous submissions.
func (g *Grievance) ApplyAnonymity() {
	if g.Anonymous {
		g.Name = nil
		g.Email = nil
	}
}

// DisplayName returns the stored name or the anonymous placeholder.
func (g Grievance) DisplayName() string {
	if g.Name == nil {
		return AnonymousName
	}
	return *g.Name
}

// DisplayEmail returns the stored email or the hidden placeholder.
func (g Grievance) DisplayEmail() string {
	if g.Email == nil {
		return HiddenEmail
	}
	return *g.Email
}
