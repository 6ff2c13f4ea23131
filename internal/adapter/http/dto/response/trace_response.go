package response

import (
	"delta33_backoffice/internal/domain/entities"
)

type TraceResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
}

func FromTrace(t entities.AgreementTrace) TraceResponse {
	return TraceResponse{
		ID:       t.ID,
		ClientID: t.ClientID,
		Date:     t.Date,
		Content:  t.Content,
		Source:   string(t.Source),
		Summary:  t.Summary,
	}
}

func FromTraces(list []entities.AgreementTrace) []TraceResponse {
	out := make([]TraceResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTrace(t))
	}
	return out
}
