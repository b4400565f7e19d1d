package echoapi

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/shulehq/shule/core/access"
)

type accessApi struct {
	service *access.Service
}

func registerAccessAPI(g *echo.Group, svc *access.Service) {
	api := accessApi{service: svc}

	ag := g.Group("/access", requireSession)
	ag.GET("/resolve", api.accessResolve)
	ag.POST("/selection", api.accessChoose)
	ag.DELETE("/selection", api.accessForget)
	ag.GET("/roles", api.accessQueryRoles)
}

type (
	academyAccess struct {
		ID    string   `json:"id"`
		Name  string   `json:"name"`
		Roles []string `json:"roles"`
	}

	accessResponse struct {
		Principal  access.PrincipalID `json:"principal_id"`
		SuperAdmin bool               `json:"is_super_admin,omitempty"`
		Academies  []academyAccess    `json:"academies"`
		Resolution access.Resolution  `json:"resolution"`
	}
)

func newAccessResponse(a access.Access) accessResponse {
	academies := make([]academyAccess, 0, len(a.Aggregation.Tenants))
	for _, tr := range a.Aggregation.Tenants {
		academies = append(academies, academyAccess{ID: tr.ID, Name: tr.Name, Roles: tr.Roles()})
	}
	sort.Slice(academies, func(i, j int) bool { return academies[i].ID < academies[j].ID })

	return accessResponse{
		Principal:  a.Principal,
		SuperAdmin: a.Aggregation.SuperAdmin,
		Academies:  academies,
		Resolution: a.Resolution,
	}
}

// Handlers

func (api *accessApi) accessResolve(ctx echo.Context) error {
	credential, err := getContextCredential(ctx)
	if err != nil {
		return err
	}

	a, err := api.service.Resolve(ctx.Request().Context(), credential)
	if err != nil {
		if err == access.ErrNoSession {
			return errUnauthorized
		}
		return err
	}
	return ctx.JSON(http.StatusOK, newAccessResponse(a))
}

func (api *accessApi) accessChoose(ctx echo.Context) error {
	credential, err := getContextCredential(ctx)
	if err != nil {
		return err
	}

	data := new(access.Selection)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}

	a, err := api.service.Choose(ctx.Request().Context(), credential, *data)
	if err != nil {
		if err == access.ErrNoSession {
			return errUnauthorized
		}
		return err
	}
	return ctx.JSON(http.StatusOK, newAccessResponse(a))
}

func (api *accessApi) accessForget(ctx echo.Context) error {
	credential, err := getContextCredential(ctx)
	if err != nil {
		return err
	}
	if err = api.service.Forget(ctx.Request().Context(), credential); err != nil {
		if err == access.ErrNoSession {
			return errUnauthorized
		}
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *accessApi) accessQueryRoles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, access.Roles)
}
