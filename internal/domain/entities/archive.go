package entities

// Archive is the exportable snapshot of the four record stores: a single
// JSON document with one top-level key per record type. Re-importing an
// exported archive reproduces the exact record sequences.
type Archive struct {
	Appointments []Appointment    `json:"appointments"`
	Budgets      []Budget         `json:"budgets"`
	Traces       []AgreementTrace `json:"traces"`
	Surveys      []SurveyResponse `json:"surveys"`
}
