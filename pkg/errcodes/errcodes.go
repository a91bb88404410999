package errcodes

// ErrorCode is a stable machine-readable error identifier exposed in API
// responses.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"
	Forbidden           ErrorCode = "Forbidden"

	ListingNotFound  ErrorCode = "ListingNotFound"
	BenchmarkMissing ErrorCode = "BenchmarkMissing"
	EmptyInput       ErrorCode = "EmptyInput"
	InvalidSourceURL ErrorCode = "InvalidSourceURL"
	FetchFailed      ErrorCode = "FetchFailed"
)
