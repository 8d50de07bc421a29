package ports

import "fmt"

// TransportError reports a failure to complete an outbound request:
// a network error, a timeout, or a non-success HTTP status.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DataFormatError reports a response that arrived but did not match the
// expected shape (missing rows or elements, non-numeric duration).
// Raw keeps the full response body so callers can dump it for diagnosis.
type DataFormatError struct {
	Reason string
	Raw    []byte
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("unexpected response format: %s", e.Reason)
}
