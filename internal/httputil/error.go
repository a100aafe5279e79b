package httputil

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HTTPError is the body of all error responses. The frontend shows
// the message verbatim in a toast.
type HTTPError struct {
	Message string `json:"message"`
}

// NewError writes an error response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Message: err.Error(),
	})
}

// NewErrorString writes an error response with a fixed message.
func NewErrorString(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Message: message,
	})
}

// ErrorHandler writes the error response for an error coming out of
// the database layer.
func ErrorHandler(c *gin.Context, err error) {
	switch {
	// No row => 404
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound):
		NewError(c, http.StatusNotFound, err)

	// Conflicts => 400
	case errors.Is(err, models.ErrUsernameTaken) ||
		errors.Is(err, models.ErrRecordMonthNotUnique) ||
		errors.Is(err, models.ErrNotesMonthNotUnique):
		NewError(c, http.StatusBadRequest, err)

	// Number parsing => 400
	case reflect.TypeOf(err) == reflect.TypeOf(&strconv.NumError{}):
		NewError(c, http.StatusBadRequest, errors.New("A value specified in the URL was not a valid number"))

	// All other errors are logged server side, the client only gets
	// a generic message
	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, models.ErrGeneral)
	}
}
