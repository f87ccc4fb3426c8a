package draft

import "errors"

// ErrEmptyProviderResponse indicates the provider call succeeded but
// returned no usable text, so no subject can be extracted.
var ErrEmptyProviderResponse = errors.New("provider returned an empty response")

// requiredFieldsMessage names all four fields collectively; validation does
// not report per-field detail.
const requiredFieldsMessage = "userRole, recipientRole, tone and details are required"

// ValidationError reports a request rejected before any provider call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError() *ValidationError {
	return &ValidationError{Message: requiredFieldsMessage}
}
