package enums

// QuoteStatus is the discriminant carried on quote responses. The front-end
// branches on this field, so the three values are part of the wire contract.
type QuoteStatus string

const (
	QuoteStatusSuccess QuoteStatus = "SUCCESS"
	QuoteStatusFail    QuoteStatus = "FAIL"
	QuoteStatusError   QuoteStatus = "ERROR"
)

// String implements fmt.Stringer.
func (q QuoteStatus) String() string {
	return string(q)
}

// IsTerminalFailure reports whether the status represents a failed outcome.
func (q QuoteStatus) IsTerminalFailure() bool {
	return q == QuoteStatusFail || q == QuoteStatusError
}
