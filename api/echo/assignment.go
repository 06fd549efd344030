package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/user"
)

type assignmentApi struct {
	conf    *core.Config
	service *assignment.Service
	userSvc *user.Service
}

func registerAssignmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, _ *auth, conf *core.Config, svc *assignment.Service, userSvc *user.Service) {
	api := assignmentApi{conf: conf, service: svc, userSvc: userSvc}

	ag := g.Group("/assignments")
	ag.GET("", api.assignmentList)

	// admin endpoints
	mg := ag.Group("", jwt, adminMiddleware())
	mg.POST("", api.assignmentCreate)
	mg.DELETE("/:id", api.assignmentDelete)
}

func (api *assignmentApi) assignmentList(ctx echo.Context) error {
	q := assignment.Query{
		Search: ctx.QueryParam("search"),
		Filter: ctx.QueryParam("filter"),
	}
	res, err := api.service.Filter(ctx.Request().Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *assignmentApi) assignmentCreate(ctx echo.Context) error {
	data := new(assignment.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	a, err := api.service.Create(ctx.Request().Context(), *data, api.authorEmail(ctx))
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Assignment added successfully!", a)
}

func (api *assignmentApi) assignmentDelete(ctx echo.Context) error {
	// deletions are destructive; the client's confirm dialog must set this
	if confirmed, _ := strconv.ParseBool(ctx.QueryParam("confirm")); !confirmed {
		return errConfirmRequired
	}

	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return respondOK(ctx, "Assignment deleted successfully", nil)
}

// authorEmail resolves the author from the session, falling back to the
// configured admin address for writes outside one.
func (api *assignmentApi) authorEmail(ctx echo.Context) string {
	if usr, err := getContextUser(ctx, api.userSvc); err == nil {
		return usr.Email
	}
	return api.conf.AdminEmail
}
