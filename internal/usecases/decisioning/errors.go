package decisioning

import "errors"

var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrReportNotFound    = errors.New("analysis report not found")
)
