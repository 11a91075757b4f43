package hoasdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned in the "error" field. The list mirrors the server's
// business rule failures.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeValidation       = "validation_failed"
	ErrorCodeServerError      = "server_error"
	ErrorCodeUnauthenticated  = "unauthenticated"
	ErrorCodeRateLimited      = "rate_limit_exceeded"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeNotMember        = "not_member"
	ErrorCodeInvalidLogin     = "invalid_credentials"
	ErrorCodeEmailTaken       = "email_taken"
	ErrorCodeInvalidInvite    = "invalid_invite_code"
	ErrorCodeAlreadyMember    = "already_member"
	ErrorCodeAlreadyRequested = "already_requested"
	ErrorCodeSelfDemotion     = "self_demotion"
	ErrorCodeSoleAdmin        = "sole_admin"
	ErrorCodePollClosed       = "poll_closed"
	ErrorCodePollNotOpen      = "poll_not_open"
	ErrorCodeInvalidOption    = "invalid_option"
	ErrorCodePollTypeLocked   = "poll_type_locked"
	ErrorCodeCategoryFull     = "category_full"
)

// APIError is a non 2xx response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// StatusCode returns the HTTP status of an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback to generic error with status text
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "_")),
		Description: strings.TrimSpace(string(body)),
	}
}
