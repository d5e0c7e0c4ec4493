// Package apierror defines the JSON body returned by every failed request.
package apierror

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/validation"
)

// Response is the body of every failed request. Errors is only set for
// validation failures.
type Response struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// JSON writes a Response with the given status
func JSON(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Message: message})
}

// Abort writes a Response and stops the handler chain
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Message: message})
}

// Validation writes a 400 listing every violated field
func Validation(c *gin.Context, errs *validation.Errors) {
	c.JSON(http.StatusBadRequest, Response{Message: "Validation error", Errors: errs.Fields})
}
