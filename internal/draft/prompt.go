package draft

import (
	"fmt"

	"github.com/stoik/scribe/internal/models"
)

// Field values are embedded verbatim; the provider is trusted to honor the
// formatting instructions, no output validation happens here.
const promptTemplate = `You are an expert email drafting assistant.

Write an email from a %s to a %s. The tone of the email should be %s.

Here are the details of what the email should cover: %s

Format the email exactly as follows:
- A subject line
- A blank line
- A salutation followed by the email body
- A generic sign-off followed by [Your Name]`

// BuildPrompt renders the drafting instructions for a request.
func BuildPrompt(req models.DraftRequest) string {
	return fmt.Sprintf(promptTemplate, req.UserRole, req.RecipientRole, req.Tone, req.Details)
}
