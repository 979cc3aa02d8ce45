// models/survey.go
package models

import "time"

// Survey status names.
const (
	SurveyOpen       = "Open"
	SurveyInProgress = "In Progress"
	SurveyComplete   = "Complete"
)

// Survey is a support ticket: a user's question and, once a collaborator has
// taken and answered it, the response.
type Survey struct {
	ID           string        `json:"id"`
	User         User          `json:"user"`
	Collaborator *Collaborator `json:"collaborator,omitempty"`
	Status       string        `json:"status"`
	Question     string        `json:"question"`
	Response     string        `json:"response,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	ResponseAt   *time.Time    `json:"responseAt,omitempty"`
}

// CanTake reports whether a collaborator may assign the survey to themselves.
func (s Survey) CanTake() bool { return s.Status == SurveyOpen }

// CanRespond reports whether a response may be submitted.
func (s Survey) CanRespond() bool { return s.Status == SurveyInProgress }

// SurveyResponseRequest is the collaborator's answer form payload.
type SurveyResponseRequest struct {
	Response string `json:"response" form:"response" validate:"required,min=1,max=4000"`
}
