package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
)

type attendanceApi struct {
	svc      *attendance.Service
	validate *validator.Validate
}

func registerAttendanceAPI(g *echo.Group, deps ServerDeps) {
	api := attendanceApi{
		svc:      deps.AttendanceSvc,
		validate: deps.Validate,
	}

	ag := g.Group("/attendance")
	ag.POST("", api.take)
	ag.GET("", api.snapshot)
}

// Handlers

// take runs one attendance session end to end: the declared status for the
// selected roll numbers, the opposite status for the rest of the roster.
func (api *attendanceApi) take(ctx echo.Context) error {
	var data AttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	status, _ := attendance.ParseStatus(data.Status) // validated in data.Validate
	key := roster.NewClassKey(data.Subject, data.Branch, data.Section)

	sess := attendance.NewSession(key, data.Date)
	if err := sess.ChooseStatus(status); err != nil {
		return err
	}
	if err := sess.SelectRolls(data.Rolls...); err != nil {
		return err
	}
	if err := sess.Submit(); err != nil {
		return err
	}

	res, err := api.svc.Confirm(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "confirming session")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *attendanceApi) snapshot(ctx echo.Context) error {
	key := roster.NewClassKey(ctx.QueryParam("subject"), ctx.QueryParam("branch"), ctx.QueryParam("section"))
	rows, err := api.svc.Snapshot(ctx.Request().Context(), key)
	if err != nil {
		return errors.Wrap(err, "querying ledger")
	}
	return ctx.JSON(http.StatusOK, rows)
}
