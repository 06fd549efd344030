package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
)

type newsApi struct {
	conf    *core.Config
	service *news.Service
	userSvc *user.Service
}

func registerNewsAPI(g *echo.Group, jwt echo.MiddlewareFunc, _ *auth, conf *core.Config, svc *news.Service, userSvc *user.Service) {
	api := newsApi{conf: conf, service: svc, userSvc: userSvc}

	ng := g.Group("/news")
	ng.GET("", api.newsList)

	// admin endpoints
	mg := ng.Group("", jwt, adminMiddleware())
	mg.POST("", api.newsCreate)
	mg.DELETE("/:id", api.newsDelete)
}

func (api *newsApi) newsList(ctx echo.Context) error {
	res, err := api.service.Search(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *newsApi) newsCreate(ctx echo.Context) error {
	data := new(news.NewNews)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	authorEmail := api.conf.AdminEmail
	if usr, err := getContextUser(ctx, api.userSvc); err == nil {
		authorEmail = usr.Email
	}

	n, err := api.service.Create(ctx.Request().Context(), *data, authorEmail)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "News published successfully!", n)
}

func (api *newsApi) newsDelete(ctx echo.Context) error {
	if confirmed, _ := strconv.ParseBool(ctx.QueryParam("confirm")); !confirmed {
		return errConfirmRequired
	}

	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return respondOK(ctx, "News deleted successfully", nil)
}
