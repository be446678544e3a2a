// Package cli formats gradebook data for console display.
// Presenters handle the conversion from domain objects to tables and
// headings for the demo binary.
package cli

import (
	"fmt"
	"io"

	"github.com/alem-hub/gradebook/internal/domain/grades"
	"github.com/alem-hub/gradebook/internal/domain/student"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Presenter renders rosters, transcripts and rankings as console tables.
type Presenter struct {
	out     io.Writer
	heading *color.Color
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		heading: color.New(color.FgYellow, color.Bold),
	}
}

// Roster prints all students in registry order.
func (p *Presenter) Roster(title string, students []*student.Student) {
	p.heading.Fprintf(p.out, "\n%s\n", title)

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Student ID", "Name", "Age"})

	for _, s := range students {
		table.Append([]string{
			s.ID().String(),
			s.Name().String(),
			fmt.Sprintf("%d", s.Age().Int()),
		})
	}

	table.Render()
}

// Transcript prints one student's scores with the average and letter grade.
func (p *Presenter) Transcript(s *student.Student, scores []grades.Score, average float64) {
	p.heading.Fprintf(p.out, "\nTranscript: %s (%s)\n", s.Name(), s.ID())

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Subject", "Points"})

	for _, sc := range scores {
		table.Append([]string{
			sc.Subject().String(),
			fmt.Sprintf("%.2f", sc.Points().Float64()),
		})
	}

	table.SetFooter([]string{"Average", fmt.Sprintf("%.2f (%s)", average, grades.GradeFor(average))})
	table.Render()
}

// Ranking prints the top students by average score.
func (p *Presenter) Ranking(ranking []grades.StudentAverage, byID func(student.StudentID) (*student.Student, bool)) {
	p.heading.Fprintf(p.out, "\nTop %d Students\n", len(ranking))

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Rank", "Student ID", "Name", "Average", "Grade"})

	for i, entry := range ranking {
		name := "-"
		// Журнал развязан с реестром: запись в рейтинге может не иметь студента
		if s, ok := byID(student.StudentID(entry.StudentID)); ok {
			name = s.Name().String()
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			entry.StudentID,
			name,
			fmt.Sprintf("%.2f", entry.Average),
			entry.Grade.String(),
		})
	}

	table.Render()
}
