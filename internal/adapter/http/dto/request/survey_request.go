package request

type SubmitSurveyRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}
