package entities

// SurveyResponse is post-service client feedback.
//
// At most one survey may exist per appointment; the rule is enforced at the
// submission boundary (use case), uniformly for every caller.
type SurveyResponse struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
}
