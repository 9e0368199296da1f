// Package faq answers common HR questions from a fixed keyword table.
package faq

import "strings"

// Entry maps a lower-case keyword phrase to its canned answer.
type Entry struct {
	Keyword string
	Answer  string
}

// DefaultEntries returns the built-in HR answers in match order.
func DefaultEntries() []Entry {
	return []Entry{
		{"leave policy", "Employees are entitled to 20 paid leaves per year."},
		{"work from home", "Employees can work from home up to 2 days per week."},
		{"health benefits", "We provide health insurance covering up to $5000 per year."},
		{"probation period", "The probation period for new employees is 6 months."},
		{"overtime policy", "Employees are compensated for overtime at 1.5 times the regular hourly rate."},
		{"dress code", "Employees are expected to wear business casual attire."},
		{"salary increment", "Salary increments are performance-based and reviewed annually."},
		{"training programs", "The company offers regular training sessions on skill development."},
		{"travel reimbursement", "Employees can claim travel expenses for official work trips."},
		{"retirement benefits", "Employees are eligible for a pension plan after 5 years of service."},
	}
}

// Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	entries []Entry
}

// NewResolver copies entries, lower-casing keywords.
func NewResolver(entries []Entry) *Resolver {
	copied := make([]Entry, 0, len(entries))
	for _, e := range entries {
		copied = append(copied, Entry{Keyword: strings.ToLower(e.Keyword), Answer: e.Answer})
	}
	return &Resolver{entries: copied}
}

// Resolve returns the answer of the first entry whose keyword occurs in the
// question, ignoring case.
func (r *Resolver) Resolve(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, e := range r.entries {
		if strings.Contains(q, e.Keyword) {
			return e.Answer, true
		}
	}
	return "", false
}
