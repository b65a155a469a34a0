package echoapi

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/assignment"
)

var orderingParam = "ordering"

// Ordering binds the `ordering` query param ("due_date", "-title", ...) to an
// assignment.Ordering; title ascending when absent.
type Ordering struct {
	assignment.Ordering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	ord.Key = assignment.SortByTitle
	ord.Ascending = true

	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}
	field := strings.TrimSpace(val)
	if strings.HasPrefix(field, "-") {
		ord.Ascending = false
		field = field[1:] // drop "-"
	}
	switch field {
	case assignment.SortByTitle, assignment.SortByDueDate, assignment.SortByCreatedAt:
		ord.Key = field
	}
}

// Filter binds the list filter query params to an assignment.QueryFilter.
type Filter struct {
	assignment.QueryFilter
}

func (f *Filter) Bind(ctx echo.Context) {
	f.Search = ctx.QueryParam("search")
	f.ContentType = ctx.QueryParam("content_type")
	f.Status = ctx.QueryParam("status")
	f.CourseID = bindUUID(ctx, "course_id")
	f.ClassID = bindUUID(ctx, "class_id")
	f.TeacherID = bindUUID(ctx, "teacher_id")
	f.DueFrom = bindTime(ctx, "due_from")
	f.DueTo = bindTime(ctx, "due_to")
	f.Clean()
}

func bindUUID(ctx echo.Context, param string) uuid.UUID {
	if val := ctx.QueryParam(param); val != "" {
		if id, err := uuid.Parse(val); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func bindTime(ctx echo.Context, param string) time.Time {
	if val := ctx.QueryParam(param); val != "" {
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t
		}
	}
	return time.Time{}
}
