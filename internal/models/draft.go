package models

// DraftRequest holds the drafting parameters supplied by the caller.
// The same struct binds from a JSON body or from URL query parameters.
type DraftRequest struct {
	UserRole      string `json:"userRole" form:"userRole"`
	RecipientRole string `json:"recipientRole" form:"recipientRole"`
	Tone          string `json:"tone" form:"tone"`
	Details       string `json:"details" form:"details"`
}

// EmailComponents is the subject/body pair extracted from generated text.
type EmailComponents struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DraftResult is the response payload for a successful draft generation.
// EmailText is the full provider output; EmailComponents is its split form.
type DraftResult struct {
	EmailText       string          `json:"emailText"`
	EmailComponents EmailComponents `json:"emailComponents"`
}
