// respond.go - JSON response envelope and error mapping
// Every response uses the same envelope: {success, message, data, errors}.
// Service failures carry their own status hint; anything unrecognized is
// logged and returned as a generic 500 so storage errors never leak.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Envelope - The uniform response body
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors"`
}

// OK - 200 success response
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Errors: []string{}})
}

// Created - 201 resource-created response
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data, Errors: []string{}})
}

// Fail - Maps a service error (or anything else) to the error envelope
func Fail(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		errs := interface{}([]string{})
		if len(svcErr.Fields) > 0 {
			errs = svcErr.Fields
		}
		c.JSON(svcErr.Kind.Status(), Envelope{Success: false, Message: svcErr.Message, Data: nil, Errors: errs})
		return
	}

	// Unexpected failure: log it, return a generic message
	log.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Something went wrong", Data: nil, Errors: []string{}})
}

// FailWith - Error envelope with an explicit status and message
func FailWith(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message, Data: nil, Errors: []string{}})
}

// bindJSON - Binds the request body into input, writing a 422 envelope with
// field-level messages when validation fails. Returns false if binding failed.
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fieldName(fe)] = fieldMessage(fe)
			}
			c.JSON(http.StatusUnprocessableEntity, Envelope{Success: false, Message: "Validation failed", Data: nil, Errors: fields})
			return false
		}
		FailWith(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// fieldName - Lowercased struct field name for the error map
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "body"
	}
	// Field() gives the Go field name; report it snake-ish like the JSON keys
	out := make([]byte, 0, len(name)+2)
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			ch += 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}

// fieldMessage - Human-readable message per validation tag
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}
