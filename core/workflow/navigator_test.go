package workflow

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/directory"
	"github.com/trezcool/darasa/core/evaluation"
)

// lookupStub satisfies EvaluationLookup with canned responses.
type lookupStub struct {
	ev    evaluation.TeacherEvaluation
	err   error
	calls int
}

func (s *lookupStub) ForPair(studentID, assignmentID uuid.UUID) (evaluation.TeacherEvaluation, error) {
	s.calls++
	return s.ev, s.err
}

func testAssignment() assignment.Assignment {
	return assignment.Assignment{ID: uuid.New(), Title: "Algebra drill"}
}

func testStudent() directory.Student {
	return directory.Student{ID: uuid.New(), Name: "Asha"}
}

func TestNavigator_startsOnList(t *testing.T) {
	nav := NewNavigator(nil)
	assert.Equal(t, ScreenList, nav.Screen())
	_, ok := nav.Assignment()
	assert.False(t, ok)
	assert.Equal(t, 0, nav.ReloadSeq())
}

func TestNavigator_transitions(t *testing.T) {
	a := testAssignment()
	tests := []struct {
		name    string
		arrange func(nav *Navigator)
		act     func(nav *Navigator) error
		wantErr error
		want    Screen
	}{
		{
			name:    "list to create",
			arrange: func(nav *Navigator) {},
			act:     func(nav *Navigator) error { return nav.OpenCreate() },
			want:    ScreenCreate,
		},
		{
			name:    "list to view",
			arrange: func(nav *Navigator) {},
			act:     func(nav *Navigator) error { return nav.OpenView(a) },
			want:    ScreenView,
		},
		{
			name:    "view to edit",
			arrange: func(nav *Navigator) { _ = nav.OpenView(a) },
			act:     func(nav *Navigator) error { return nav.OpenEdit() },
			want:    ScreenEdit,
		},
		{
			name:    "view to evaluate",
			arrange: func(nav *Navigator) { _ = nav.OpenView(a) },
			act:     func(nav *Navigator) error { return nav.OpenEvaluate(testStudent()) },
			want:    ScreenEvaluate,
		},
		{
			name:    "edit not reachable from list",
			arrange: func(nav *Navigator) {},
			act:     func(nav *Navigator) error { return nav.OpenEdit() },
			wantErr: ErrInvalidTransition,
			want:    ScreenList,
		},
		{
			name:    "evaluate not reachable from list",
			arrange: func(nav *Navigator) {},
			act:     func(nav *Navigator) error { return nav.OpenEvaluate(testStudent()) },
			wantErr: ErrInvalidTransition,
			want:    ScreenList,
		},
		{
			name:    "create not reachable from view",
			arrange: func(nav *Navigator) { _ = nav.OpenView(a) },
			act:     func(nav *Navigator) error { return nav.OpenCreate() },
			wantErr: ErrInvalidTransition,
			want:    ScreenView,
		},
		{
			name: "create not reachable from edit",
			arrange: func(nav *Navigator) {
				_ = nav.OpenView(a)
				_ = nav.OpenEdit()
			},
			act:     func(nav *Navigator) error { return nav.OpenCreate() },
			wantErr: ErrInvalidTransition,
			want:    ScreenEdit,
		},
		{
			name:    "cancel not defined on list",
			arrange: func(nav *Navigator) {},
			act:     func(nav *Navigator) error { return nav.Cancel() },
			wantErr: ErrInvalidTransition,
			want:    ScreenList,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(nil)
			tt.arrange(nav)
			err := tt.act(nav)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, nav.Screen())
		})
	}
}

func TestNavigator_cancelSemantics(t *testing.T) {
	a := testAssignment()

	// create → list
	nav := NewNavigator(nil)
	_ = nav.OpenCreate()
	assert.NoError(t, nav.Cancel())
	assert.Equal(t, ScreenList, nav.Screen())

	// edit → view, keeping the assignment
	nav = NewNavigator(nil)
	_ = nav.OpenView(a)
	_ = nav.OpenEdit()
	assert.NoError(t, nav.Cancel())
	assert.Equal(t, ScreenView, nav.Screen())
	got, ok := nav.Assignment()
	assert.True(t, ok)
	assert.Equal(t, a.ID, got.ID)

	// evaluate → view, dropping the student
	_ = nav.OpenEvaluate(testStudent())
	assert.NoError(t, nav.Cancel())
	assert.Equal(t, ScreenView, nav.Screen())
	_, ok = nav.Student()
	assert.False(t, ok)
}

func TestNavigator_savedTransitions(t *testing.T) {
	a := testAssignment()
	nav := NewNavigator(nil)

	_ = nav.OpenCreate()
	assert.NoError(t, nav.CreateSaved())
	assert.Equal(t, ScreenList, nav.Screen())
	assert.Equal(t, 1, nav.ReloadSeq())

	_ = nav.OpenView(a)
	_ = nav.OpenEdit()
	assert.NoError(t, nav.EditSaved())
	assert.Equal(t, ScreenList, nav.Screen())
	assert.Equal(t, 2, nav.ReloadSeq())
	_, ok := nav.Assignment()
	assert.False(t, ok)

	_ = nav.OpenView(a)
	_ = nav.OpenEvaluate(testStudent())
	assert.NoError(t, nav.EvaluationSaved())
	assert.Equal(t, ScreenView, nav.Screen())
	assert.Equal(t, 2, nav.ReloadSeq()) // evaluation saves do not touch the list
	_, ok = nav.Student()
	assert.False(t, ok)
	got, ok := nav.Assignment()
	assert.True(t, ok)
	assert.Equal(t, a.ID, got.ID)

	// saved signals are only defined on their form screens
	assert.Equal(t, ErrInvalidTransition, nav.CreateSaved())
	assert.Equal(t, ErrInvalidTransition, nav.EditSaved())
	assert.Equal(t, ErrInvalidTransition, nav.EvaluationSaved())
}

func TestNavigator_evaluatePrefetch(t *testing.T) {
	a := testAssignment()
	student := testStudent()

	t.Run("existing evaluation pre-populates", func(t *testing.T) {
		stub := &lookupStub{ev: evaluation.TeacherEvaluation{
			ID:        uuid.New(),
			StudentID: student.ID,
			Comments:  "Solid term.",
		}}
		nav := NewNavigator(stub)
		_ = nav.OpenView(a)
		if err := nav.OpenEvaluate(student); err != nil {
			t.Fatalf("OpenEvaluate() failed: %v", err)
		}
		assert.Equal(t, 1, stub.calls)
		ev, ok := nav.Evaluation()
		assert.True(t, ok)
		assert.Equal(t, "Solid term.", ev.Comments)
	})

	t.Run("lookup failure still enters with fresh form", func(t *testing.T) {
		stub := &lookupStub{err: evaluation.ErrNotFound}
		nav := NewNavigator(stub)
		_ = nav.OpenView(a)
		if err := nav.OpenEvaluate(student); err != nil {
			t.Fatalf("OpenEvaluate() failed: %v", err)
		}
		assert.Equal(t, ScreenEvaluate, nav.Screen())
		_, ok := nav.Evaluation()
		assert.False(t, ok)
	})
}

func TestNavigator_breadcrumbs(t *testing.T) {
	a := testAssignment()
	student := testStudent()
	nav := NewNavigator(nil)

	labels := func() []string {
		var out []string
		for _, c := range nav.Breadcrumbs() {
			out = append(out, c.Label)
		}
		return out
	}

	assert.Equal(t, []string{"Assignments"}, labels())
	assert.True(t, nav.Breadcrumbs()[0].Current)

	_ = nav.OpenCreate()
	assert.Equal(t, []string{"Assignments", "New Assignment"}, labels())

	_ = nav.Cancel()
	_ = nav.OpenView(a)
	assert.Equal(t, []string{"Assignments", "Algebra drill"}, labels())

	_ = nav.OpenEdit()
	assert.Equal(t, []string{"Assignments", "Algebra drill", "Edit"}, labels())

	_ = nav.Cancel()
	_ = nav.OpenEvaluate(student)
	assert.Equal(t, []string{"Assignments", "Algebra drill", "Evaluate Asha"}, labels())

	// only the terminal crumb is current
	crumbs := nav.Breadcrumbs()
	for i, c := range crumbs {
		assert.Equal(t, i == len(crumbs)-1, c.Current)
	}
}

func TestNavigator_goToCrumb(t *testing.T) {
	a := testAssignment()
	nav := NewNavigator(nil)
	_ = nav.OpenView(a)
	_ = nav.OpenEvaluate(testStudent())

	// the terminal crumb is inert
	assert.Equal(t, ErrInvalidTransition, nav.GoToCrumb(2))
	assert.Equal(t, ErrInvalidTransition, nav.GoToCrumb(-1))
	assert.Equal(t, ErrInvalidTransition, nav.GoToCrumb(9))
	assert.Equal(t, ScreenEvaluate, nav.Screen())

	// back to the view crumb drops the student
	assert.NoError(t, nav.GoToCrumb(1))
	assert.Equal(t, ScreenView, nav.Screen())
	_, ok := nav.Student()
	assert.False(t, ok)
	_, ok = nav.Assignment()
	assert.True(t, ok)

	// back to the list anchor clears everything
	assert.NoError(t, nav.GoToCrumb(0))
	assert.Equal(t, ScreenList, nav.Screen())
	_, ok = nav.Assignment()
	assert.False(t, ok)
}

func TestNavigator_failKeepsScreen(t *testing.T) {
	nav := NewNavigator(nil)
	_ = nav.OpenCreate()

	nav.Fail("save failed")
	assert.Equal(t, ScreenCreate, nav.Screen())
	assert.Equal(t, "save failed", nav.Err())

	// any transition clears the message
	_ = nav.Cancel()
	assert.Empty(t, nav.Err())
}

func TestNavigator_loadTokens(t *testing.T) {
	nav := NewNavigator(nil)

	gen, err := nav.BeginLoad()
	if err != nil {
		t.Fatalf("BeginLoad() failed: %v", err)
	}

	// a second load may not start while one is unresolved
	_, err = nav.BeginLoad()
	assert.Equal(t, ErrLoadPending, err)

	assert.True(t, nav.ResolveLoad(gen))

	// resolved tokens do not replay
	gen2, err := nav.BeginLoad()
	if err != nil {
		t.Fatalf("BeginLoad() failed: %v", err)
	}
	assert.False(t, nav.ResolveLoad(gen))
	assert.True(t, nav.ResolveLoad(gen2))
}

func TestNavigator_transitionSupersedesLoad(t *testing.T) {
	nav := NewNavigator(nil)

	gen, err := nav.BeginLoad()
	if err != nil {
		t.Fatalf("BeginLoad() failed: %v", err)
	}
	_ = nav.OpenCreate()

	// the response landed after the screen changed: discard it
	assert.False(t, nav.ResolveLoad(gen))

	// and a fresh load can start on the new screen
	gen2, err := nav.BeginLoad()
	if err != nil {
		t.Fatalf("BeginLoad() failed: %v", err)
	}
	assert.True(t, nav.ResolveLoad(gen2))
}
