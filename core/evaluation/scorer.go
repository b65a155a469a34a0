package evaluation

import (
	"errors"

	"github.com/trezcool/darasa/core"
)

var (
	scoreRangeText   = "score must be between 1 and 5"
	commentsText     = "comments are required"
	strengthsText    = "at least one strength is required"
	errInvalidScorer = errors.New("evaluation is incomplete")
)

// Scorer holds the in-progress evaluation form state: three independently
// clamped sub-scores with a synchronously derived overall rating, plus the
// qualitative fields. The overall rating is never settable, only read.
type Scorer struct {
	participation float64
	understanding float64
	progress      float64
	overall       float64

	Comments            string
	Strengths           []string
	AreasForImprovement []string
	Recommendations     []string
}

// NewScorer starts all sub-scores at the midpoint so the derived overall is
// defined from the first render.
func NewScorer() *Scorer {
	s := &Scorer{participation: 3, understanding: 3, progress: 3}
	s.recompute()
	return s
}

// Load seeds the form from an existing evaluation.
func (s *Scorer) Load(ev TeacherEvaluation) {
	s.participation = core.Clamp(ev.Participation, ScoreMin, ScoreMax)
	s.understanding = core.Clamp(ev.Understanding, ScoreMin, ScoreMax)
	s.progress = core.Clamp(ev.Progress, ScoreMin, ScoreMax)
	s.Comments = ev.Comments
	s.Strengths = append([]string(nil), ev.Strengths...)
	s.AreasForImprovement = append([]string(nil), ev.AreasForImprovement...)
	s.Recommendations = append([]string(nil), ev.Recommendations...)
	s.recompute()
}

func (s *Scorer) recompute() {
	s.overall = Overall(s.participation, s.understanding, s.progress)
}

// Setters clamp out-of-range values to the nearest bound instead of rejecting
// them, and recompute the overall rating immediately.

func (s *Scorer) SetParticipation(v float64) {
	s.participation = core.Clamp(v, ScoreMin, ScoreMax)
	s.recompute()
}

func (s *Scorer) SetUnderstanding(v float64) {
	s.understanding = core.Clamp(v, ScoreMin, ScoreMax)
	s.recompute()
}

func (s *Scorer) SetProgress(v float64) {
	s.progress = core.Clamp(v, ScoreMin, ScoreMax)
	s.recompute()
}

func (s *Scorer) Participation() float64 { return s.participation }
func (s *Scorer) Understanding() float64 { return s.understanding }
func (s *Scorer) Progress() float64      { return s.progress }
func (s *Scorer) Overall() float64       { return s.overall }

// List editing; entries are trimmed, blanks dropped, duplicates permitted.

func (s *Scorer) AddStrength(v string) {
	if v = core.CleanString(v); v != "" {
		s.Strengths = append(s.Strengths, v)
	}
}

func (s *Scorer) RemoveStrength(i int) {
	if i >= 0 && i < len(s.Strengths) {
		s.Strengths = append(s.Strengths[:i], s.Strengths[i+1:]...)
	}
}

func (s *Scorer) AddAreaForImprovement(v string) {
	if v = core.CleanString(v); v != "" {
		s.AreasForImprovement = append(s.AreasForImprovement, v)
	}
}

func (s *Scorer) RemoveAreaForImprovement(i int) {
	if i >= 0 && i < len(s.AreasForImprovement) {
		s.AreasForImprovement = append(s.AreasForImprovement[:i], s.AreasForImprovement[i+1:]...)
	}
}

func (s *Scorer) AddRecommendation(v string) {
	if v = core.CleanString(v); v != "" {
		s.Recommendations = append(s.Recommendations, v)
	}
}

func (s *Scorer) RemoveRecommendation(i int) {
	if i >= 0 && i < len(s.Recommendations) {
		s.Recommendations = append(s.Recommendations[:i], s.Recommendations[i+1:]...)
	}
}

// Validate re-checks everything the submit path requires, one error per
// violated field. It never calls out; a failing form must not hit the wire.
func (s *Scorer) Validate() error {
	var flds []core.FieldError
	for fld, score := range map[string]float64{
		"participation": s.participation,
		"understanding": s.understanding,
		"progress":      s.progress,
	} {
		if score < ScoreMin || score > ScoreMax {
			flds = append(flds, core.FieldError{Field: fld, Error: scoreRangeText})
		}
	}
	if core.CleanString(s.Comments) == "" {
		flds = append(flds, core.FieldError{Field: "comments", Error: commentsText})
	}
	if len(s.Strengths) == 0 {
		flds = append(flds, core.FieldError{Field: "strengths", Error: strengthsText})
	}
	if len(flds) > 0 {
		return core.NewValidationError(errInvalidScorer, flds...)
	}
	return nil
}
