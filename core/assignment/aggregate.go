package assignment

import (
	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
)

// Progress aggregates one assignment's submissions over a class roster.
type Progress struct {
	StudentCount    int `json:"student_count"`
	SubmissionCount int `json:"submission_count"`
	CompletionRate  int `json:"completion_rate"` // integer percent, [0,100]
	AverageScore    int `json:"average_score"`
}

// Aggregate computes the completion rate and average score for a roster of
// `studentCount` students. Submissions without a score are left out of the
// average entirely, not counted as zero; an empty roster yields zeros.
func Aggregate(studentCount int, submissions []Submission) Progress {
	prog := Progress{
		StudentCount:    studentCount,
		SubmissionCount: len(submissions),
	}
	if studentCount == 0 {
		return prog
	}

	var completed int
	var scoreSum float64
	var scored int
	for _, sub := range submissions {
		if sub.IsComplete() {
			completed++
		}
		if sub.Score != nil {
			scoreSum += *sub.Score
			scored++
		}
	}

	prog.CompletionRate = core.RoundPercent(100 * float64(completed) / float64(studentCount))
	if scored > 0 {
		prog.AverageScore = core.RoundPercent(scoreSum / float64(scored))
	}
	return prog
}

// SubmissionFor returns the student's submission, if any. Inputs hold at most
// one submission per student; attempt numbering happens upstream.
func SubmissionFor(submissions []Submission, studentID uuid.UUID) (Submission, bool) {
	for _, sub := range submissions {
		if sub.StudentID == studentID {
			return sub, true
		}
	}
	return Submission{}, false
}
