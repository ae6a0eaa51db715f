package models

// AccessDecision is the outcome of the verification gate: either the user
// may enter discovery, or they are redirected to the step they are missing.
type AccessDecision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}
