package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedQueryParams    = "missing or invalid query parameter"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserIDRequired = errors.New("userId is required")
)
