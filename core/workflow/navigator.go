// Package workflow drives the assignment console's multi-screen flow:
// which screen is shown, what is selected, and the breadcrumb trail.
// All transitions are synchronous; asynchronous collaborator loads are
// bracketed by generation tokens so stale responses can be discarded.
package workflow

import (
	"errors"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
)

type Screen string

const (
	ScreenList     Screen = "list"
	ScreenCreate   Screen = "create"
	ScreenEdit     Screen = "edit"
	ScreenView     Screen = "view"
	ScreenEvaluate Screen = "evaluate"
)

var (
	ErrInvalidTransition = errors.New("transition not allowed from current screen")
	ErrNoAssignment      = errors.New("an assignment must be selected")
	ErrLoadPending       = errors.New("a load is already in progress")
)

// EvaluationLookup is the collaborator consulted when entering the evaluate
// screen, so the form can be pre-populated. *evaluation.Service satisfies it.
type EvaluationLookup interface {
	ForPair(studentID, assignmentID uuid.UUID) (evaluation.TeacherEvaluation, error)
}

// Navigator is the screen state machine. It is not safe for concurrent use;
// the surrounding screen tree owns exactly one and threads it through.
type Navigator struct {
	evals EvaluationLookup

	screen     Screen
	assignment *assignment.Assignment
	student    *directory.Student
	evaluation *evaluation.TeacherEvaluation // cached for the evaluate form
	crumbs     []Crumb
	reloadSeq  int
	errMsg     string

	loadGen int
	pending bool
}

func NewNavigator(evals EvaluationLookup) *Navigator {
	nav := &Navigator{evals: evals, screen: ScreenList}
	nav.rebuildCrumbs()
	return nav
}

func (nav *Navigator) Screen() Screen { return nav.screen }

// Assignment returns the assignment under view/edit/evaluate, if any.
func (nav *Navigator) Assignment() (assignment.Assignment, bool) {
	if nav.assignment == nil {
		return assignment.Assignment{}, false
	}
	return *nav.assignment, true
}

// Student returns the student under evaluation, if any.
func (nav *Navigator) Student() (directory.Student, bool) {
	if nav.student == nil {
		return directory.Student{}, false
	}
	return *nav.student, true
}

// Evaluation returns the pre-fetched evaluation for the evaluate form, if one
// existed for the (assignment, student) pair.
func (nav *Navigator) Evaluation() (evaluation.TeacherEvaluation, bool) {
	if nav.evaluation == nil {
		return evaluation.TeacherEvaluation{}, false
	}
	return *nav.evaluation, true
}

// ReloadSeq increments on every successful save; list consumers watch it to
// know when to re-query.
func (nav *Navigator) ReloadSeq() int { return nav.reloadSeq }

// Err is the current page-level error message, if any.
func (nav *Navigator) Err() string { return nav.errMsg }

// OpenCreate moves list → create, clearing any selected assignment.
func (nav *Navigator) OpenCreate() error {
	if nav.screen != ScreenList {
		return ErrInvalidTransition
	}
	nav.assignment = nil
	nav.enter(ScreenCreate)
	return nil
}

// OpenView moves list → view for the given assignment.
func (nav *Navigator) OpenView(a assignment.Assignment) error {
	if nav.screen != ScreenList {
		return ErrInvalidTransition
	}
	nav.assignment = &a
	nav.enter(ScreenView)
	return nil
}

// OpenEdit moves view → edit, carrying the viewed assignment forward.
func (nav *Navigator) OpenEdit() error {
	if nav.screen != ScreenView {
		return ErrInvalidTransition
	}
	if nav.assignment == nil {
		return ErrNoAssignment
	}
	nav.enter(ScreenEdit)
	return nil
}

// OpenEvaluate moves view → evaluate for the given student. An existing
// evaluation for the (assignment, student) pair is looked up first so the
// form can be pre-populated; lookup failure still enters the screen with a
// fresh form.
func (nav *Navigator) OpenEvaluate(student directory.Student) error {
	if nav.screen != ScreenView {
		return ErrInvalidTransition
	}
	if nav.assignment == nil {
		return ErrNoAssignment
	}

	nav.evaluation = nil
	if nav.evals != nil {
		if ev, err := nav.evals.ForPair(student.ID, nav.assignment.ID); err == nil {
			nav.evaluation = &ev
		}
	}
	nav.student = &student
	nav.enter(ScreenEvaluate)
	return nil
}

// Cancel discards in-progress form edits: create → list, edit → view,
// evaluate → view.
func (nav *Navigator) Cancel() error {
	switch nav.screen {
	case ScreenCreate:
		nav.toList()
	case ScreenEdit:
		nav.enter(ScreenView)
	case ScreenEvaluate:
		nav.student = nil
		nav.evaluation = nil
		nav.enter(ScreenView)
	default:
		return ErrInvalidTransition
	}
	return nil
}

// CreateSaved moves create → list after a successful save and signals list
// consumers to reload.
func (nav *Navigator) CreateSaved() error {
	if nav.screen != ScreenCreate {
		return ErrInvalidTransition
	}
	nav.reloadSeq++
	nav.toList()
	return nil
}

// EditSaved moves edit → list after a successful save and signals list
// consumers to reload.
func (nav *Navigator) EditSaved() error {
	if nav.screen != ScreenEdit {
		return ErrInvalidTransition
	}
	nav.reloadSeq++
	nav.toList()
	return nil
}

// EvaluationSaved moves evaluate → view after a successful save, clearing the
// selected student and cached evaluation.
func (nav *Navigator) EvaluationSaved() error {
	if nav.screen != ScreenEvaluate {
		return ErrInvalidTransition
	}
	nav.student = nil
	nav.evaluation = nil
	nav.enter(ScreenView)
	return nil
}

// Fail records a page-level error without leaving the current screen; the
// in-progress form stays intact so the user can retry or cancel.
func (nav *Navigator) Fail(msg string) {
	nav.errMsg = msg
}

// BeginLoad hands out a generation token for an asynchronous collaborator
// load. Only one load may be unresolved at a time.
func (nav *Navigator) BeginLoad() (int, error) {
	if nav.pending {
		return 0, ErrLoadPending
	}
	nav.loadGen++
	nav.pending = true
	return nav.loadGen, nil
}

// ResolveLoad reports whether a response for `gen` is still current. Stale
// responses (superseded by a transition or a newer load) must be discarded.
func (nav *Navigator) ResolveLoad(gen int) bool {
	if gen != nav.loadGen {
		return false
	}
	nav.pending = false
	return true
}

func (nav *Navigator) toList() {
	nav.assignment = nil
	nav.student = nil
	nav.evaluation = nil
	nav.enter(ScreenList)
}

// enter commits a transition: any in-flight load is superseded, the error
// message cleared and the breadcrumb trail rebuilt from the new state.
func (nav *Navigator) enter(screen Screen) {
	nav.loadGen++
	nav.pending = false
	nav.errMsg = ""
	nav.screen = screen
	nav.rebuildCrumbs()
}
