package draft

import "strings"

// SplitEmail splits generated text into a subject and body on the first
// blank-line paragraph break. When the text holds a single paragraph the
// whole text becomes the subject and the body is empty.
func SplitEmail(text string) (subject, body string, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", "", ErrEmptyProviderResponse
	}

	subject, body, _ = strings.Cut(trimmed, "\n\n")
	return subject, body, nil
}
