package apierrors

import (
	"fmt"

	"taskcollab/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message. Debug is only filled
// outside production.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Debug   string `json:"debug,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return CreateErrorWithData(code, msgKey, lang, nil)
}

// CreateErrorWithData generates a JsonErr whose message template is filled with data.
func CreateErrorWithData(code int, msgKey string, lang string, data map[string]any) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: translator.Localize(msgKey, lang, data)}}
}

// WithDebug attaches internal details to the error.
func (e JsonErr) WithDebug(debug string) JsonErr {
	e.ErrDetails.Debug = debug
	return e
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang, nil)
}
