package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/user"
)

var (
	errMissingToken         = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed jwt")
	errInvalidToken         = echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired jwt")
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "invalid email or password")
	errRefreshExpired       = echo.NewHTTPError(http.StatusForbidden, "refresh has expired")
	errHTTPForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
	errTokenSigningFailed   = echo.NewHTTPError(http.StatusInternalServerError, "token signing failed")
	errConfirmRequired      = echo.NewHTTPError(http.StatusBadRequest, "deletion must be confirmed")
	errStorageFailed        = echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable, nothing was changed")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to map domain and validation errors to JSON envelopes.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}
		notifyType := core.NotifyError

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			switch {
			case errors.Is(err, user.ErrInvalidCredentials):
				code, message = http.StatusBadRequest, origErr.Error()
			case errors.Is(err, attendance.ErrInvalidCode):
				code, message = http.StatusBadRequest, origErr.Error()
			case errors.Is(err, attendance.ErrNotAuthenticated):
				code, message = http.StatusUnauthorized, origErr.Error()
			case errors.Is(err, attendance.ErrRedeemInFlight):
				code, message = http.StatusConflict, origErr.Error()
			case errors.Is(err, core.ErrStorageFull):
				code, message = errStorageFailed.Code, errStorageFailed.Message
			case errors.Is(err, user.ErrNotFound):
				code, message = errHTTPNotFound.Code, errHTTPNotFound.Message
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				var usr user.User
				if claims, cErr := getContextClaims(ctx); cErr == nil {
					usr.ID = claims.Subject
					usr.Name = claims.Name
					usr.Email = claims.Email
				}
				logger.Error(msg, errors.Wrap(err, msg), usr)
			}
		}

		if m, ok := message.(string); ok {
			message = core.Notification{Message: m, Type: notifyType}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
