package httputil

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("The body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("The request body must not be empty")
)

// BindData binds the JSON body of the request to the struct passed in
// the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}

// ParseID parses the named URL parameter as a resource ID.
func ParseID(c *gin.Context, param string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		ErrorHandler(c, err)
		return 0, err
	}

	return uint(parsed), nil
}

// ParseInt parses the named URL parameter as an integer, e.g. a month
// or year path segment.
func ParseInt(c *gin.Context, param string) (int, error) {
	parsed, err := strconv.Atoi(c.Param(param))
	if err != nil {
		ErrorHandler(c, err)
		return 0, err
	}

	return parsed, nil
}
