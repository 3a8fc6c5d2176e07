package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// LegacyFailure is the flat failure body used by the quote endpoints, whose
// clients branch on the status field instead of the error envelope.
type LegacyFailure struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}
