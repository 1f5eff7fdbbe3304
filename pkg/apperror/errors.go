package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client unless Expose)

	// Expose renders the wrapped error's message next to Message. Only set
	// for downstream failures whose text the caller needs to act on.
	Expose bool `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail returns the wrapped error's message, or Message when nothing is wrapped.
func (e *AppError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrMissingFields() *AppError {
	return New("VAL_001", "Missing required fields: name, symbol, and recipient are required", http.StatusBadRequest)
}

func ErrInvalidRecipient() *AppError {
	return New("VAL_002", "Invalid recipient: expected a 0x-prefixed 20-byte hex address", http.StatusBadRequest)
}

func ErrMissingImage() *AppError {
	return New("VAL_003", `No image provided. Please attach your image under the "logo" form field.`, http.StatusBadRequest)
}

func ErrMalformedForm(err error) *AppError {
	return Wrap("VAL_004", "Malformed multipart form", http.StatusBadRequest, err)
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_005", "Payload too large", http.StatusRequestEntityTooLarge)
}

func ErrInvalidRecordID() *AppError {
	return New("VAL_006", "Invalid launch record id", http.StatusBadRequest)
}

// ---- Metadata (META) ----

func ErrImageAttach(err error) *AppError {
	return Wrap("META_001", "Logo could not be attached: an image file with an image/* content type is required", http.StatusBadRequest, err)
}

// ---- Security (SEC) ----

func ErrInvalidAPIKey() *AppError {
	return New("SEC_001", "Invalid API Key", http.StatusUnauthorized)
}

func ErrOriginNotAllowed() *AppError {
	return New("SEC_002", "Not allowed by CORS", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Too many token launches from this IP, please try again later.", http.StatusTooManyRequests)
}

// ---- Configuration (CFG) ----

func ErrWalletNotConfigured() *AppError {
	return New("CFG_001", "Wallet not configured. Please set DEPLOYER_PRIVATE_KEY environment variable.", http.StatusInternalServerError)
}

// ---- Launch (LAUNCH) ----

// ErrLaunchFailed surfaces the downstream failure text to the caller.
func ErrLaunchFailed(err error) *AppError {
	e := Wrap("LAUNCH_001", "Token launch failed.", http.StatusInternalServerError, err)
	e.Expose = true
	return e
}

// ---- Launch records (REC) ----

func ErrNotFound(entity string) *AppError {
	return New("REC_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRecordsUnavailable() *AppError {
	return New("REC_002", "Launch records are not persisted. Please set DATABASE_URL.", http.StatusServiceUnavailable)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal Server Error", http.StatusInternalServerError, err)
}
