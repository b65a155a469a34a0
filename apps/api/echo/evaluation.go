package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/evaluation"
)

type evaluationApi struct {
	svc *evaluation.Service
}

func registerEvaluationAPI(g *echo.Group, svc *evaluation.Service) {
	api := evaluationApi{svc: svc}

	eg := g.Group("/evaluations")
	eg.GET("", api.retrieve)
	eg.PUT("", api.save)
}

// retrieve returns the single evaluation for a (student, assignment) pair.
func (api *evaluationApi) retrieve(ctx echo.Context) error {
	studentID := bindUUID(ctx, "student_id")
	assignmentID := bindUUID(ctx, "assignment_id")

	ev, err := api.svc.ForPair(studentID, assignmentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ev)
}

// save creates the pair's evaluation or updates the existing one.
func (api *evaluationApi) save(ctx echo.Context) error {
	var data evaluation.NewEvaluation
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvaluation")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ev, err := api.svc.Save(data)
	if err != nil {
		return errors.Wrap(err, "saving evaluation")
	}
	return ctx.JSON(http.StatusOK, ev)
}
