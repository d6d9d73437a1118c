package api

// AuthError reports an authentication failure (HTTP 401). By the time the
// caller sees it the bound session has already been cleared.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// RequestError reports a non-401 unsuccessful response. Message carries the
// backend's envelope message when one was present, otherwise the raw body
// text, otherwise the transport status text.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }
