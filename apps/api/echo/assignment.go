package echoapi

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
)

type assignmentApi struct {
	svc     *assignment.Service
	evalSvc *evaluation.Service
	dirSvc  *directory.Service
}

func registerAssignmentAPI(g *echo.Group, svc *assignment.Service, evalSvc *evaluation.Service, dirSvc *directory.Service) {
	api := assignmentApi{svc: svc, evalSvc: evalSvc, dirSvc: dirSvc}

	ag := g.Group("/assignments")
	ag.GET("", api.query)
	ag.POST("", api.create)

	// detail endpoints
	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/duplicate", api.duplicate)
	dg.GET("/progress", api.progress)
	dg.GET("/students/:sid", api.studentWork)
}

// Handlers

func (api *assignmentApi) query(ctx echo.Context) error {
	var filter Filter
	filter.Bind(ctx)
	var ordering Ordering
	ordering.Bind(ctx)

	res, err := api.svc.List(filter.QueryFilter, ordering.Ordering)
	if err != nil {
		return errors.Wrap(err, "listing assignments")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	a, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *assignmentApi) retrieve(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	a, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) update(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	orig, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}

	var data assignment.UpdateAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAssignment")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	a, err := api.svc.Update(id, data)
	if err != nil {
		return errors.Wrap(err, "updating assignment")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) destroy(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.Delete(id); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) duplicate(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	dup, err := api.svc.Duplicate(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dup)
}

func (api *assignmentApi) progress(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	prog, err := api.svc.Progress(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prog)
}

// StudentWork combines one student's submission and evaluation for an
// assignment; either may be absent.
type StudentWork struct {
	Submission *assignment.Submission        `json:"submission"`
	Evaluation *evaluation.TeacherEvaluation `json:"evaluation"`
}

// studentWork issues the two lookups concurrently and combines them once both
// resolved; any non-not-found failure aborts the whole load.
func (api *assignmentApi) studentWork(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	sid, err := pathUUID(ctx, "sid")
	if err != nil {
		return err
	}

	var (
		wg      sync.WaitGroup
		sub     assignment.Submission
		ev      evaluation.TeacherEvaluation
		subErr  error
		evalErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		sub, subErr = api.svc.GetSubmission(sid, id)
	}()
	go func() {
		defer wg.Done()
		ev, evalErr = api.evalSvc.ForPair(sid, id)
	}()
	wg.Wait()

	work := StudentWork{}
	switch {
	case subErr == nil:
		work.Submission = &sub
	case errors.Is(subErr, assignment.ErrSubmissionNotFound): // absent, not fatal
	default:
		return errors.Wrap(subErr, "loading submission")
	}
	switch {
	case evalErr == nil:
		work.Evaluation = &ev
	case errors.Is(evalErr, evaluation.ErrNotFound):
	default:
		return errors.Wrap(evalErr, "loading evaluation")
	}
	return ctx.JSON(http.StatusOK, work)
}

func pathUUID(ctx echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return id, nil
}
