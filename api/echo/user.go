package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abdelrhmanQ/shc2/core/user"
)

type userApi struct {
	auth    *auth
	service *user.Service
}

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, a *auth, svc *user.Service) {
	api := userApi{auth: a, service: svc}

	ug := g.Group("/users")

	// un-authed endpoints
	ug.POST("/register", api.userRegister)
	ug.POST("/login", api.userLogin)

	// authed endpoints
	ag := ug.Group("", jwt)
	ag.GET("/me", api.userMe)
	ag.POST("/token-refresh", api.userRefreshToken)
	ag.GET("", api.userQuery, adminMiddleware())
}

func (api *userApi) userRegister(ctx echo.Context) error {
	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	usr, err := api.service.Register(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}

	// registration logs the user straight in
	token, err := api.auth.generateToken(api.auth.getUserClaims(usr))
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusCreated, "Registration successful!", echo.Map{
		"user":  usr,
		"token": token,
	})
}

func (api *userApi) userLogin(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.service.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := api.auth.generateToken(api.auth.getUserClaims(usr))
	if err != nil {
		return err
	}
	return respondOK(ctx, "Login successful!", LoginResponse{Token: token})
}

func (api *userApi) userMe(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.service)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) userRefreshToken(ctx echo.Context) error {
	token, err := api.auth.refreshToken(ctx, api.service)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, RefreshResponse{Token: token})
}

func (api *userApi) userQuery(ctx echo.Context) error {
	users, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}
