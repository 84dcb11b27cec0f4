package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("01HV3Q0J9Z8K4M2N6P8R0T2V4X  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" project")
	default:
		_, _ = c.Println(" projects")
	}
}

func (pp *PrettyPrint) Projects(projects ...client.ProjectSummary) {
	if len(projects) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	a := color.New(color.Faint, color.Italic)

	for _, p := range projects {
		if pp.ShowID {
			_, _ = y.Print(p.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(p.ID)))
		}
		switch p.DayCount {
		case 1:
			_, _ = t.Printf("%s (1 day)", p.Name)
		default:
			_, _ = t.Printf("%s (%d days)", p.Name, p.DayCount)
		}
		if p.Archived {
			_, _ = a.Print("  archived")
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) Document(doc schedule.Document) {
	pp.Title(doc.Name)
	if doc.Notes != "" {
		_, _ = color.New(color.Italic).Println(doc.Notes)
	}
	pp.NewLine()

	for _, s := range doc.Sections() {
		switch s := s.(type) {
		case schedule.DaySection:
			pp.day(doc.Layout, s)
		case schedule.CalltimeSection:
			pp.calltime(s)
		}
	}
}

func (pp *PrettyPrint) day(layout schedule.ColumnLayout, day schedule.DaySection) {
	h := color.New(color.Bold)
	_, _ = h.Printf("Day %s\n", day.Date)

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true

	headers := make([]interface{}, 0, len(schedule.Roles()))
	for _, role := range schedule.Roles() {
		headers = append(headers, layout.Column(role).Header)
	}
	table.AddRow(headers...)

	for _, row := range day.Rows {
		switch r := row.(type) {
		case schedule.ScheduleItemRow:
			table.AddRow(r.TimeFrom, r.TimeTo, r.Scene, r.Location, r.Cast, r.Notes)
		case schedule.ScheduleTextRow:
			table.AddRow(r.Notes)
		}
	}
	fmt.Println(table)
	pp.NewLine()
}

func (pp *PrettyPrint) calltime(ct schedule.CalltimeSection) {
	h := color.New(color.Bold)
	_, _ = h.Println(ct.Title)

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	table.AddRow(ct.Headers.Time, ct.Headers.Name)

	for _, row := range ct.Rows {
		switch r := row.(type) {
		case schedule.CalltimeItemRow:
			table.AddRow(r.Time, r.Name)
		case schedule.CalltimeTextRow:
			table.AddRow("", r.Name)
		}
	}
	fmt.Println(table)
	pp.NewLine()
}

func (pp *PrettyPrint) Health(h client.Health) {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	p := ok
	if h.Status != "healthy" {
		p = bad
	}
	_, _ = p.Printf("backend: %s", h.Status)
	_, _ = color.New(color.Faint).Printf("  database: %s  at %s\n", h.Database, h.Timestamp)
}
