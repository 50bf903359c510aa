package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cutlery/internal/errors"
	"cutlery/internal/model"
)

// CallerKey is the echo context key the auth middleware stores the resolved user under.
const CallerKey = "user"

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// fail converts err into an echo HTTP error, logging anything unclassified.
func fail(c echo.Context, log *zap.Logger, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidRequest(err error) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "INVALID_REQUEST",
	})
}

func caller(c echo.Context) (*model.User, error) {
	user, ok := c.Get(CallerKey).(*model.User)
	if !ok || user == nil {
		return nil, errors.ErrInvalidToken
	}
	return user, nil
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.ErrInvalidID
	}
	return id, nil
}
