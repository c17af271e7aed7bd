package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps service and repository errors onto HTTP statuses. Errors
// carrying their own StatusCode win; repository sentinels come next.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var coded interface{ StatusCode() int }
	switch {
	case errors.As(err, &coded):
		status = coded.StatusCode()
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrDuplicateID),
		errors.Is(err, repository.ErrRegionExists):
		status = http.StatusConflict
	}

	c.JSON(status, NewErrorResponse(err.Error()))
}
