package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, unexpected backend statuses, session store
	// failures, or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a 404 from the backend, or a user or project ID that is not
	// in the listing.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a backend body that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid roles, statuses, fields or ratings, payloads that
	// fail validation, and 400/422 answers from the backend.
	ExitValidation = 5
)
