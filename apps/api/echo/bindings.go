package echoapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core/collection"
	exportsvc "github.com/trezcool/masomo/services/export"
)

// queryFilter is a screen's filter bound from the query string.
type queryFilter[F any] interface {
	*F
	Clean()
}

// bindFilter binds, cleans then validates the query filter of a listing request.
func bindFilter[F any, PF queryFilter[F]](ctx echo.Context, validate *validator.Validate) (F, error) {
	var filter F
	if err := ctx.Bind(PF(&filter)); err != nil {
		return filter, err
	}
	PF(&filter).Clean()
	if err := validate.Struct(PF(&filter)); err != nil {
		return filter, err
	}
	return filter, nil
}

// collectionAPI serves the listing, export and detail endpoints of one screen collection.
type collectionAPI[T any, F any, PF queryFilter[F]] struct {
	title    string
	config   *collection.Config[T]
	validate *validator.Validate
	query    func(context.Context, F) ([]T, error)
	get      func(context.Context, string) (T, error)
}

func newCollectionAPI[T any, F any, PF queryFilter[F]](
	title string,
	config *collection.Config[T],
	validate *validator.Validate,
	query func(context.Context, F) ([]T, error),
	get func(context.Context, string) (T, error),
) *collectionAPI[T, F, PF] {
	return &collectionAPI[T, F, PF]{
		title:    title,
		config:   config,
		validate: validate,
		query:    query,
		get:      get,
	}
}

func (api *collectionAPI[T, F, PF]) filtered(ctx echo.Context) ([]T, error) {
	filter, err := bindFilter[F, PF](ctx, api.validate)
	if err != nil {
		return nil, err
	}
	recs, err := api.query(ctx.Request().Context(), filter)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", strings.ToLower(api.title))
	}
	return recs, nil
}

func (api *collectionAPI[T, F, PF]) list(ctx echo.Context) error {
	recs, err := api.filtered(ctx)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []T{}
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *collectionAPI[T, F, PF]) export(ctx echo.Context) error {
	recs, err := api.filtered(ctx)
	if err != nil {
		return err
	}
	return sendSheet(ctx, collection.NewSheet(api.title, api.config, recs))
}

func (api *collectionAPI[T, F, PF]) retrieve(ctx echo.Context) error {
	rec, err := api.get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding record by ID")
	}
	return ctx.JSON(http.StatusOK, rec)
}

// sendSheet responds with the sheet as an xlsx attachment named after its title.
func sendSheet(ctx echo.Context, sheet collection.Sheet) error {
	var buf bytes.Buffer
	if err := exportsvc.WriteXLSX(&buf, sheet); err != nil {
		return errors.Wrap(err, "writing xlsx")
	}
	filename := strings.ReplaceAll(strings.ToLower(sheet.Title), " ", "-") + ".xlsx"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, exportsvc.ContentType, buf.Bytes())
}

func statsHandler[S any](stats func(context.Context) (S, error)) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		s, err := stats(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "computing stats")
		}
		return ctx.JSON(http.StatusOK, s)
	}
}
