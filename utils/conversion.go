package utils

import (
	"strconv"

	"surveyapi/pkg/apperror"
)

// ParseID parses a positive integer path parameter into a uint primary key.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Invalid("invalid id %q", raw)
	}
	return uint(id), nil
}
