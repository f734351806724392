package query

// EnvelopeError is the uniform error shape every facade response carries
// instead of a bare Go error, so a CLI can render it without a type switch.
type EnvelopeError struct {
	Kind    string
	Message string
}

// Envelope wraps every facade response in {success, data, error}.
type Envelope[T any] struct {
	Success bool
	Data    T
	Error   *EnvelopeError
}

func ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

func fail[T any](kind, message string) Envelope[T] {
	var zero T
	return Envelope[T]{Success: false, Data: zero, Error: &EnvelopeError{Kind: kind, Message: message}}
}
