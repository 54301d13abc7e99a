package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the operation failed: remote error, bad import file, storage failure
	ExitCommandError = 2 // the command was wrong: unknown command, bad flags or arguments, bad config
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON}

// ExitError carries the exit code a failed command should end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}

		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError without an underlying error.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// Error codes of the JSON error envelope.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeParse       = "PARSE_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRemote      = "REMOTE_ERROR"
	CodeUnavailable = "REMOTE_DISABLED"
	CodeStorage     = "STORAGE_ERROR"
	CodeUsage       = "USAGE_ERROR"
	CodeCanceled    = "CANCELED"
	CodeInternal    = "INTERNAL_ERROR"
)

// errorCode classifies err for the JSON error envelope.
func errorCode(err error) string {
	switch {
	case GetExitCode(err) == ExitCommandError:
		return CodeUsage
	case domain.IsValidation(err):
		return CodeValidation
	case domain.IsParse(err):
		return CodeParse
	case domain.IsNotFound(err):
		return CodeNotFound
	case domain.IsRemote(err):
		return CodeRemote
	case errors.Is(err, app.ErrRemoteDisabled):
		return CodeUnavailable
	case domain.IsStorageCorrupt(err), app.IsExecutionError(err):
		return CodeStorage
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	default:
		return CodeInternal
	}
}

// Response is the JSON envelope of every command in --format json.
type Response struct {
	Status string         `json:"status"`
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError describes a failed command.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Printer writes command results in the selected format.
type Printer struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer

	// Styled enables terminal styling of text output.
	Styled bool
}

// JSON reports whether the printer emits JSON envelopes.
func (p *Printer) JSON() bool {
	return p.Format == FormatJSON
}

// Success writes data. In text mode text is written instead, verbatim.
func (p *Printer) Success(data any, text string) error {
	if p.JSON() {
		return p.encode(Response{Status: "ok", Data: data})
	}

	_, err := io.WriteString(p.Writer, text)

	return err
}

// Error writes err in the selected format: a JSON envelope on the output
// writer, or a single line on the error writer.
func (p *Printer) Error(err error) {
	if p.JSON() {
		_ = p.encode(Response{
			Status: "error",
			Error:  &ResponseError{Code: errorCode(err), Message: err.Error()},
		})

		return
	}

	fmt.Fprintf(p.ErrWriter, "error: %v\n", err)
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
