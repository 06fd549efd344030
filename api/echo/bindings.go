package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abdelrhmanQ/shc2/core"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	RefreshResponse struct {
		Token string `json:"token"`
	}

	// payload is the success envelope: a transient notification for the
	// client's toast surface plus the data being returned.
	payload struct {
		core.Notification
		Data interface{} `json:"data,omitempty"`
	}
)

func (r *LoginRequest) Validate() error {
	r.Email = core.CleanString(r.Email, true /* lower */)
	return core.Validate.Struct(r)
}

func respond(ctx echo.Context, code int, message string, data interface{}) error {
	return ctx.JSON(code, payload{
		Notification: core.Notification{Message: message, Type: core.NotifySuccess},
		Data:         data,
	})
}

func respondOK(ctx echo.Context, message string, data interface{}) error {
	return respond(ctx, http.StatusOK, message, data)
}
