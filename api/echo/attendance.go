package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/user"
)

type attendanceApi struct {
	service *attendance.Service
	userSvc *user.Service
}

type redeemRequest struct {
	Code string `json:"code"`
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, _ *auth, svc *attendance.Service, userSvc *user.Service) {
	api := attendanceApi{service: svc, userSvc: userSvc}

	ag := g.Group("/attendance", jwt)
	ag.POST("/redeem", api.attendanceRedeem)
	ag.GET("/records", api.attendanceRecords)

	// admin endpoints
	sg := ag.Group("/sessions", adminMiddleware())
	sg.POST("", api.sessionIssue)
	sg.GET("/current", api.sessionCurrent)
	sg.DELETE("/current", api.sessionEnd)
}

func (api *attendanceApi) sessionIssue(ctx echo.Context) error {
	data := new(attendance.NewSession)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return err
	}

	s, err := api.service.Issue(ctx.Request().Context(), *data, usr.ID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Session created successfully!", s)
}

func (api *attendanceApi) sessionCurrent(ctx echo.Context) error {
	s, ok := api.service.CurrentSession()
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusOK, s)
}

// sessionEnd clears the issuing slot only; the stored session record is
// left active (known gap).
func (api *attendanceApi) sessionEnd(ctx echo.Context) error {
	api.service.EndSession()
	return respondOK(ctx, "Session ended", nil)
}

func (api *attendanceApi) attendanceRedeem(ctx echo.Context) error {
	data := new(redeemRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return err
	}

	rec, err := api.service.Redeem(ctx.Request().Context(), data.Code, usr)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Attendance marked successfully!", rec)
}

func (api *attendanceApi) attendanceRecords(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return err
	}
	recs, err := api.service.Records(ctx.Request().Context(), usr.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, recs)
}
