package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/models"
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
	// Reported is set once the error has been written for the user
	Reported bool
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// UsageError marks bad flag values detected after cobra's own parsing
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

const networkSuggestion = "Check that the backend is running, or point at it with --api-url or KHEDMA_API_URL"

// Classify maps err to an exit code, an error code for the JSON envelope,
// and an optional suggestion
func Classify(err error) (exit int, code string, suggestion string) {
	var usage *UsageError
	var exitErr *ExitCodeError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code, "ERROR", ""
	case errors.As(err, &usage):
		return ExitUsage, "INVALID_USAGE", ""
	case errors.Is(err, ErrNotLoggedIn):
		return ExitUsage, "NOT_LOGGED_IN", "Log in first: khedma login --email <email> --password <password>"
	case errors.Is(err, ErrNotFound):
		return ExitNotFound, "NOT_FOUND", ""
	case errors.Is(err, models.ErrInvalidRole),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidField),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, ErrValidation):
		return ExitValidation, "VALIDATION_ERROR", ""
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return ExitDataErr, "INVALID_RESPONSE", "The backend answered with an unexpected body; check --api-url"
	case api.IsNetwork(err):
		return ExitError, "NETWORK_ERROR", networkSuggestion
	}

	switch api.StatusCode(err) {
	case 0:
		return ExitError, "ERROR", ""
	case http.StatusNotFound:
		return ExitNotFound, "NOT_FOUND", ""
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ExitValidation, "VALIDATION_ERROR", ""
	case http.StatusUnauthorized, http.StatusForbidden:
		return ExitError, "UNAUTHORIZED", ""
	default:
		return ExitError, "API_ERROR", ""
	}
}

var (
	// ErrValidation wraps payload validation failures so they classify as such
	ErrValidation = errors.New("validation failed")

	// ErrNotLoggedIn is returned by commands that need the admin session
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound is returned when an id matches nothing in a listing
	ErrNotFound = errors.New("not found")
)

// Fail reports err through the formatter and returns an *ExitCodeError with the
// matching exit code
func Fail(formatter *OutputFormatter, err error) error {
	exit, code, suggestion := Classify(err)
	message := api.MessageOr(err, err.Error())
	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exit, Err: err, Reported: true}
}
