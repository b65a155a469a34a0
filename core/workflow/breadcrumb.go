package workflow

// Crumb is one entry of the breadcrumb trail. Every crumb but the last is a
// clickable shortcut performing the corresponding backward transition; the
// last one is the current location and inert.
type Crumb struct {
	Label   string `json:"label"`
	Screen  Screen `json:"screen"`
	Current bool   `json:"current"`
}

func (nav *Navigator) Breadcrumbs() []Crumb {
	return nav.crumbs
}

// GoToCrumb performs the backward transition a clickable crumb stands for.
// The terminal crumb is a no-op.
func (nav *Navigator) GoToCrumb(i int) error {
	if i < 0 || i >= len(nav.crumbs) || nav.crumbs[i].Current {
		return ErrInvalidTransition
	}
	switch nav.crumbs[i].Screen {
	case ScreenList:
		nav.toList()
	case ScreenView:
		nav.student = nil
		nav.evaluation = nil
		nav.enter(ScreenView)
	default:
		return ErrInvalidTransition
	}
	return nil
}

// rebuildCrumbs derives the whole trail from the current screen and retained
// context; it is rebuilt on every transition, never persisted independently.
func (nav *Navigator) rebuildCrumbs() {
	title := "Assignment"
	if nav.assignment != nil {
		title = nav.assignment.Title
	}

	crumbs := []Crumb{{Label: "Assignments", Screen: ScreenList}}
	switch nav.screen {
	case ScreenCreate:
		crumbs = append(crumbs, Crumb{Label: "New Assignment", Screen: ScreenCreate})
	case ScreenView:
		crumbs = append(crumbs, Crumb{Label: title, Screen: ScreenView})
	case ScreenEdit:
		crumbs = append(crumbs,
			Crumb{Label: title, Screen: ScreenView},
			Crumb{Label: "Edit", Screen: ScreenEdit},
		)
	case ScreenEvaluate:
		label := "Evaluate"
		if nav.student != nil {
			label = "Evaluate " + nav.student.Name
		}
		crumbs = append(crumbs,
			Crumb{Label: title, Screen: ScreenView},
			Crumb{Label: label, Screen: ScreenEvaluate},
		)
	}
	crumbs[len(crumbs)-1].Current = true
	nav.crumbs = crumbs
}
