package errors

import "errors"

var (
	// ErrDuplicateUsername is returned when registering a username that is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidPassword is returned when a password fails the complexity policy.
	ErrInvalidPassword = errors.New("password does not meet the complexity policy")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput is returned when a submitted measurement is not a finite number.
	ErrInvalidInput = errors.New("measurements must be numeric")
	// ErrModelUnavailable is returned when the classifier failed to load at startup.
	ErrModelUnavailable = errors.New("prediction model unavailable")
	// ErrPredictionFailure is returned on an unexpected inference error.
	ErrPredictionFailure = errors.New("prediction failed")
	// ErrEncoderUnavailable signals the label encoder is missing or cannot map
	// the raw output. Non-fatal: callers fall back to the raw class index.
	ErrEncoderUnavailable = errors.New("label encoder unavailable")
)

// UserMessage maps a domain error to the flash text shown on the originating form.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateUsername):
		return "Username already exists!"
	case errors.Is(err, ErrInvalidPassword):
		return "Password must be at least 8 characters with an uppercase letter, a lowercase letter, a digit and a symbol, and must not equal the username."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrInvalidInput):
		return "All seven measurements must be numeric values."
	case errors.Is(err, ErrModelUnavailable):
		return "The prediction model is currently unavailable. Please try again later."
	case errors.Is(err, ErrPredictionFailure):
		return "Something went wrong while predicting. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
