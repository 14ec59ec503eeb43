package dto

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/michelstore/storefront-service/pkg/errs"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors
	return c.JSON(statusCode, resp)
}

// WriteValidationErrorResponse reports field-level failures without leaking
// anything beyond the offending fields.
func WriteValidationErrorResponse(c echo.Context, validationErrors []ValidationError) error {
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = errs.ErrClient.Error()
	resp.Errors = validationErrors
	return c.JSON(http.StatusBadRequest, resp)
}
