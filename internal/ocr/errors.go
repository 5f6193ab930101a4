package ocr

import "errors"

var (
	// ErrMissingCredential means no API key was configured. Checked
	// before any network call is made.
	ErrMissingCredential = errors.New("missing MISTRAL_API_KEY")

	// ErrAuthentication means the upstream rejected the credential.
	ErrAuthentication = errors.New("OCR API rejected the credential")

	// ErrUpstream covers non-success statuses and malformed payloads.
	ErrUpstream = errors.New("OCR API returned an unexpected response")

	// ErrNetwork covers connectivity failures and timeouts.
	ErrNetwork = errors.New("could not reach the OCR API")
)
