package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/user"
)

type userApi struct {
	*collectionAPI[user.User, user.QueryFilter, *user.QueryFilter]
	conf *core.Config
	svc  *user.Service
}

func newUserApi(s *Server) *userApi {
	svc := s.deps.UserSvc
	return &userApi{
		collectionAPI: newCollectionAPI("Users", &user.Collection, s.deps.Validate, svc.Query, svc.GetByID),
		conf:          s.deps.Conf,
		svc:           svc,
	}
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, s *Server) {
	api := newUserApi(s)

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/token-refresh", api.refreshToken, jwt)
}

// the settings screen
func registerSettingsAPI(g *echo.Group, s *Server) {
	api := newUserApi(s)

	g.GET("/stats", statsHandler(api.svc.Stats))
	g.GET("/roles", api.queryRoles)

	ug := g.Group("/users")
	ug.GET("", api.list)
	ug.GET("/export", api.export)
	ug.GET("/:id", api.retrieve)
}

// Handlers

func (api *userApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := authenticate(ctx.Request().Context(), api.conf, api.svc, data.Username, data.Password)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(api.conf, claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *userApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.conf, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *userApi) queryRoles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, user.Roles)
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"notblank"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return validate.Struct(lr)
}
