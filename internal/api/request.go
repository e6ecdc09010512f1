package api

import (
	"encoding/json" // json.Number amounts
	"errors"        // Empty body detection
	"fmt"           // Fallback formatting
	"io"            // Empty body detection
	"strconv"       // Path id and float formatting

	"money_tracker/internal/domain" // Domain error types

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // JSON decoding options
)

func init() {
	// Keep JSON numbers as text so amounts never pass through float64
	binding.EnableDecoderUseNumber = true
}

// pathID reads a positive integer route parameter. Anything else cannot name a row,
// so it is reported as a missing resource.
func pathID(c *gin.Context, resource string) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 || id != uint64(uint(id)) {
		return 0, &domain.NotFoundError{Resource: resource}
	}
	return uint(id), nil
}

// bindJSON decodes the request body into dst and returns the problems found, never nil.
// Request fields are typed any, so only a body that is not a JSON object fails here.
// An empty body decodes as {} so required-field rules report on each field.
// The result is handed to the service, which reports it after the parent lookup.
func bindJSON(c *gin.Context, dst any) *domain.ValidationError {
	decoded := &domain.ValidationError{}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		decoded.Add(domain.BodyField, "The request body must be a valid JSON object.")
	}
	return decoded
}

// stringField reads an optional JSON string. Any other JSON type is recorded
// against field with message and read as absent.
func stringField(decoded *domain.ValidationError, field string, v any, message string) *string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		return &s
	default:
		decoded.Add(field, message)
		return nil
	}
}

// textField is stringField for fields where absent and empty mean the same thing
func textField(decoded *domain.ValidationError, field string, v any) string {
	s := stringField(decoded, field, v, fmt.Sprintf("The %s must be a string.", field))
	if s == nil {
		return ""
	}
	return *s
}

// amountText renders the decoded amount for decimal parsing without going through float64
func amountText(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case json.Number:
		return a.String()
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	default:
		// Booleans, arrays and objects fail the numeric check downstream
		return fmt.Sprintf("%v", a)
	}
}
