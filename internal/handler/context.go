package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/errors"
	"calorietracker/internal/model"
)

// UserContextKey is where the auth middleware stores the authenticated *model.User.
const UserContextKey = "user"

// maxUploadBytes bounds image uploads read into memory.
const maxUploadBytes = 10 << 20

func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing authenticated user",
			Code:  "UNAUTHORIZED",
		})
	}
	return user, nil
}

func httpError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

// readUpload returns the bytes and sniffed content type of a multipart file field.
func readUpload(c echo.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: fmt.Sprintf("multipart field %q is required", field),
			Code:  "MISSING_FILE",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", httpError(errors.NewProcessingError("open upload", err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, "", httpError(errors.NewProcessingError("read upload", err))
	}
	if len(data) > maxUploadBytes {
		return nil, "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.ErrorResponse{
			Error: fmt.Sprintf("uploaded file exceeds %d bytes", maxUploadBytes),
			Code:  "FILE_TOO_LARGE",
		})
	}
	if len(data) == 0 {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "uploaded file is empty",
			Code:  "MISSING_FILE",
		})
	}

	return data, http.DetectContentType(data), nil
}
