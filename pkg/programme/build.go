package programme

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-progcsv/pkg/csv"
)

// Build errors. They are returned wrapped in a *RowError.
var (
	ErrNoDay      = errors.New("no day before this row")
	ErrNoSession  = errors.New("no session before this row")
	ErrNoLogoArea = errors.New("no sponsor logo area before this row")
)

// RowError reports a row that could not be placed in the programme.
type RowError struct {
	// Line is the 0-based index of the row in the unfiltered table.
	Line int
	// Type is the row's type column.
	Type string
	// Err is the underlying error.
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line+1, e.Type, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Build filters table and assembles the programme.
//
// Rows are placed in three passes over the filtered table:
//
//  1. the schedule: days, sessions, breaks and speakers
//  2. the activity area: the first "activity area" row becomes a day, then
//     activity days and activities are added to it
//  3. sponsors: sponsor days, sponsor areas and logos
//
// Each row attaches to the latest matching element in display order, so a
// speaker belongs to the last session shown so far. Rows of unknown type
// are ignored. A row with nothing to attach to fails with a *RowError.
func Build(table csv.Table) (*Programme, error) {
	rows := filter(table)
	b := &builder{prog: &Programme{Days: make([]*Day, 0, 8)}}

	if err := b.pass(rows, b.schedule); err != nil {
		return nil, err
	}

	for _, e := range rows {
		if e.row.Field(1) == TypeActivityArea {
			b.addDay(e.row)
			break
		}
	}
	if err := b.pass(rows, b.activities); err != nil {
		return nil, err
	}

	if err := b.pass(rows, b.sponsors); err != nil {
		return nil, err
	}
	return b.prog, nil
}

type builder struct {
	prog *Programme
}

func (b *builder) pass(rows []entry, place func(csv.Row) error) error {
	for _, e := range rows {
		if err := place(e.row); err != nil {
			return &RowError{Line: e.line, Type: e.row.Field(1), Err: err}
		}
	}
	return nil
}

func (b *builder) schedule(row csv.Row) error {
	switch row.Field(1) {
	case TypeDay:
		b.addDay(row)
		return nil
	case TypeBreak:
		return b.addSession(row, KindIntermission)
	case TypePlenarySession:
		return b.addSession(row, KindPlenary)
	case TypeMainSession, TypeParallelSession:
		return b.addSession(row, KindParallel)
	case TypeSpeaker:
		return b.addItem(row)
	}
	return nil
}

func (b *builder) activities(row csv.Row) error {
	switch row.Field(1) {
	case TypeActivityDay:
		day := b.latestDay()
		if day == nil {
			return ErrNoDay
		}
		day.Sessions = append(day.Sessions, &Session{Kind: KindActivity, Name: row.Field(0)})
		return nil
	case TypeActivity:
		return b.addItem(row)
	}
	return nil
}

func (b *builder) sponsors(row csv.Row) error {
	switch row.Field(1) {
	case TypeSponsorDay:
		b.addDay(row)
		return nil
	case TypeSmallSponsorArea:
		day := b.latestDay()
		if day == nil {
			return ErrNoDay
		}
		day.Sponsors = append(day.Sponsors, &SponsorArea{})
		return nil
	case TypeFullSponsorArea:
		day := b.latestDay()
		if day == nil {
			return ErrNoDay
		}
		day.Sessions = append(day.Sessions, &Session{Kind: KindSponsor, Logos: &SponsorArea{}})
		return nil
	case TypeSponsorLogo:
		area := b.latestLogoArea()
		if area == nil {
			return ErrNoLogoArea
		}
		area.Logos = append(area.Logos, Logo{Image: row.Field(5), Link: row.Field(2)})
		return nil
	}
	return nil
}

func (b *builder) addDay(row csv.Row) {
	b.prog.Days = append(b.prog.Days, &Day{ID: row.Field(5), Label: row.Field(0)})
}

func (b *builder) addSession(row csv.Row, kind SessionKind) error {
	day := b.latestDay()
	if day == nil {
		return ErrNoDay
	}
	day.Sessions = append(day.Sessions, &Session{
		Kind:  kind,
		Name:  row.Field(0),
		Chair: row.Field(2),
		Start: row.Field(3),
		End:   row.Field(4),
	})
	return nil
}

func (b *builder) addItem(row csv.Row) error {
	session := b.latestSession()
	if session == nil {
		return ErrNoSession
	}
	session.Items = append(session.Items, Item{
		Name:   row.Field(0),
		Detail: row.Field(2),
		Start:  row.Field(3),
		End:    row.Field(4),
		Title:  row.Field(5),
	})
	return nil
}

func (b *builder) latestDay() *Day {
	if n := len(b.prog.Days); n > 0 {
		return b.prog.Days[n-1]
	}
	return nil
}

// latestSession returns the last session of the last day that has one.
func (b *builder) latestSession() *Session {
	for i := len(b.prog.Days) - 1; i >= 0; i-- {
		if sessions := b.prog.Days[i].Sessions; len(sessions) > 0 {
			return sessions[len(sessions)-1]
		}
	}
	return nil
}

// latestLogoArea returns the logo area shown last. Within a day the small
// sponsor areas sit above the sessions, so a full-width sponsor session
// comes after them.
func (b *builder) latestLogoArea() *SponsorArea {
	for i := len(b.prog.Days) - 1; i >= 0; i-- {
		day := b.prog.Days[i]
		for j := len(day.Sessions) - 1; j >= 0; j-- {
			if day.Sessions[j].Kind == KindSponsor {
				return day.Sessions[j].Logos
			}
		}
		if n := len(day.Sponsors); n > 0 {
			return day.Sponsors[n-1]
		}
	}
	return nil
}
