package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when local validation rejects an input before any network call.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature, network or provider is not supported.
	Unsupported = ErrorKind("Unsupported")

	// NetworkError is returned when a remote call failed or returned a non-2xx status.
	NetworkError = ErrorKind("Network Error")

	// WalletError is returned when the wallet capability is absent or rejected the request.
	WalletError = ErrorKind("Wallet Error")

	// Busy is returned when the same operation is already in flight.
	Busy = ErrorKind("Busy")

	// InvalidState is returned when an operation is not allowed in the current state.
	InvalidState = ErrorKind("Invalid State")

	Timeout       = ErrorKind("Timeout")
	InternalError = ErrorKind("Internal Error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
