package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
)

type classApi struct {
	scheduleSvc *schedule.Service
	rosterSvc   *roster.Service
	validate    *validator.Validate
}

func registerClassAPI(g *echo.Group, deps ServerDeps) {
	api := classApi{
		scheduleSvc: deps.ScheduleSvc,
		rosterSvc:   deps.RosterSvc,
		validate:    deps.Validate,
	}

	cg := g.Group("/classes")
	cg.POST("", api.create)
	cg.GET("", api.query)
	cg.PUT("", api.reschedule)
	cg.DELETE("", api.remove)

	rg := cg.Group("/roster")
	rg.GET("", api.queryRoster)
	rg.POST("", api.enroll)
	rg.DELETE("", api.removeRoster)
}

type (
	// ScheduleFailure reports one meeting day that could not be added.
	ScheduleFailure struct {
		Day   string `json:"day"`
		Error string `json:"error"`
	}

	// ClassCreated is the structured outcome of a class setup: per-day
	// schedule failures and per-roll enrollment failures are reported, they
	// do not abort the rest of the batch.
	ClassCreated struct {
		Schedules        []schedule.ClassSchedule `json:"schedules"`
		ScheduleFailures []ScheduleFailure        `json:"schedule_failures,omitempty"`
		Roster           roster.EnrollResult      `json:"roster"`
	}
)

// Handlers

func (api *classApi) create(ctx echo.Context) error {
	var data NewClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClassRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	// the whole roster expression is expanded before any store mutation
	rolls, err := roster.Expand(data.Prefix, data.RollNumbers)
	if err != nil {
		return err
	}
	if data.LateralRollNumbers != "" {
		lateral, err := roster.Expand(data.LateralPrefix, data.LateralRollNumbers)
		if err != nil {
			return err
		}
		rolls = append(rolls, lateral...)
	}

	key := roster.NewClassKey(data.Subject, data.Branch, data.Section)
	reqCtx := ctx.Request().Context()

	res := ClassCreated{Schedules: make([]schedule.ClassSchedule, 0, len(data.Days))}
	for _, dayName := range data.Days {
		day, _ := schedule.ParseWeekday(dayName) // validated in data.Validate
		sched, err := api.scheduleSvc.Add(reqCtx, key.Subject, key.BranchSection, day)
		if err != nil {
			if errors.Is(err, schedule.ErrScheduleExists) {
				res.ScheduleFailures = append(res.ScheduleFailures, ScheduleFailure{Day: string(day), Error: err.Error()})
				continue
			}
			return errors.Wrap(err, "adding schedule")
		}
		res.Schedules = append(res.Schedules, sched)
	}

	enrolled, err := api.rosterSvc.Enroll(reqCtx, key, rolls)
	if err != nil {
		return errors.Wrap(err, "enrolling roster")
	}
	res.Roster = enrolled

	return ctx.JSON(http.StatusCreated, res)
}

func (api *classApi) query(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if dayName := ctx.QueryParam("day"); dayName != "" {
		day, err := schedule.ParseWeekday(dayName)
		if err != nil {
			return err
		}
		scheds, err := api.scheduleSvc.ListByDay(reqCtx, day)
		if err != nil {
			return errors.Wrap(err, "querying schedules by day")
		}
		return ctx.JSON(http.StatusOK, scheds)
	}

	scheds, err := api.scheduleSvc.List(reqCtx)
	if err != nil {
		return errors.Wrap(err, "querying schedules")
	}
	return ctx.JSON(http.StatusOK, scheds)
}

func (api *classApi) reschedule(ctx echo.Context) error {
	var data RescheduleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RescheduleRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	oldDay, _ := schedule.ParseWeekday(data.OldDay)
	newDay, _ := schedule.ParseWeekday(data.NewDay)
	key := roster.NewClassKey(data.Subject, data.Branch, data.Section)

	sched, err := api.scheduleSvc.Reschedule(ctx.Request().Context(), key.Subject, key.BranchSection, oldDay, newDay)
	if err != nil {
		return errors.Wrap(err, "rescheduling class")
	}
	return ctx.JSON(http.StatusOK, sched)
}

func (api *classApi) remove(ctx echo.Context) error {
	var data RemoveScheduleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RemoveScheduleRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	day, _ := schedule.ParseWeekday(data.Day)
	key := roster.NewClassKey(data.Subject, data.Branch, data.Section)

	if err := api.scheduleSvc.Remove(ctx.Request().Context(), key.Subject, key.BranchSection, day); err != nil {
		return errors.Wrap(err, "removing schedule")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) queryRoster(ctx echo.Context) error {
	key := roster.NewClassKey(ctx.QueryParam("subject"), ctx.QueryParam("branch"), ctx.QueryParam("section"))
	rolls, err := api.rosterSvc.ListRollNumbers(ctx.Request().Context(), key)
	if err != nil {
		return errors.Wrap(err, "querying roster")
	}
	return ctx.JSON(http.StatusOK, rolls)
}

func (api *classApi) enroll(ctx echo.Context) error {
	var data EnrollRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EnrollRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rolls, err := roster.Expand(data.Prefix, data.RollNumbers)
	if err != nil {
		return err
	}

	key := roster.NewClassKey(data.Subject, data.Branch, data.Section)
	res, err := api.rosterSvc.Enroll(ctx.Request().Context(), key, rolls)
	if err != nil {
		return errors.Wrap(err, "enrolling roll numbers")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *classApi) removeRoster(ctx echo.Context) error {
	key := roster.NewClassKey(ctx.QueryParam("subject"), ctx.QueryParam("branch"), ctx.QueryParam("section"))
	if err := api.rosterSvc.RemoveRoster(ctx.Request().Context(), key); err != nil {
		return errors.Wrap(err, "removing roster")
	}
	return ctx.NoContent(http.StatusNoContent)
}
