package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string // safe to show to the client
	Err       error  // internal cause, for logs only
}
