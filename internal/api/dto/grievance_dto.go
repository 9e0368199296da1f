package dto

// SubmitGrievanceRequest payload. Pointers distinguish absent fields.
type SubmitGrievanceRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   *string `json:"message"`
	Anonymous *bool   `json:"anonymous"`
}

// SubmitGrievanceResponse confirms a stored grievance.
type SubmitGrievanceResponse struct {
	TicketID string `json:"ticket_id"`
	Message  string `json:"message"`
}

// GrievanceView is the display form of a grievance. The anonymity flag is
// deliberately absent; only the derived placeholders are exposed.
type GrievanceView struct {
	TicketID string `json:"ticket_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// GrievanceListResponse wraps all grievances.
type GrievanceListResponse struct {
	Grievances []GrievanceView `json:"grievances"`
}

// FAQResponse carries either an answer or a warning.
type FAQResponse struct {
	Response string `json:"response"`
}
