package exception

// AppError is the base error carried by every typed engine error. Code is
// a stable machine-readable identifier; Cause is the wrapped lower-level
// error, if any.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
