package echoapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/directory"
)

type directoryApi struct {
	svc *directory.Service
}

func registerDirectoryAPI(g *echo.Group, svc *directory.Service) {
	api := directoryApi{svc: svc}

	g.GET("/courses", api.queryCourses)
	g.GET("/courses/:id", api.retrieveCourse)
	g.GET("/classes", api.queryClasses)
	g.GET("/classes/:id", api.retrieveClass)
	g.GET("/roster", api.roster)
	g.GET("/content", api.queryContent)
}

func (api *directoryApi) queryCourses(ctx echo.Context) error {
	courses, err := api.svc.QueryAllCourses()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *directoryApi) retrieveCourse(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	course, err := api.svc.GetCourseByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *directoryApi) queryClasses(ctx echo.Context) error {
	classes, err := api.svc.QueryAllClasses()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *directoryApi) retrieveClass(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return err
	}
	class, err := api.svc.GetClassByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, class)
}

// roster resolves the students behind `class_ids` (comma-separated).
func (api *directoryApi) roster(ctx echo.Context) error {
	var classIDs []uuid.UUID
	for _, val := range strings.Split(ctx.QueryParam("class_ids"), ",") {
		if id, err := uuid.Parse(strings.TrimSpace(val)); err == nil {
			classIDs = append(classIDs, id)
		}
	}
	students, err := api.svc.Roster(classIDs...)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *directoryApi) queryContent(ctx echo.Context) error {
	items, err := api.svc.QueryContent(bindUUID(ctx, "course_id"), ctx.QueryParam("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}
