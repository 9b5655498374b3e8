package programme_test

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/shapestone/shape-progcsv/pkg/csv"
	"github.com/shapestone/shape-progcsv/pkg/programme"
)

func loadTable(t *testing.T, path string) csv.Table {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	table, err := csv.TokenizeReader(f)
	if err != nil {
		t.Fatalf("TokenizeReader(%s) error = %v", path, err)
	}
	return table
}

func TestBuild_Fixture(t *testing.T) {
	prog, err := programme.Build(loadTable(t, "testdata/programme.csv"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var labels []string
	for _, day := range prog.Days {
		labels = append(labels, day.Label)
	}
	wantLabels := []string{"Monday 4th September", "Tuesday 5th September", "Activities", "Our sponsors"}
	if !reflect.DeepEqual(labels, wantLabels) {
		t.Fatalf("day labels = %q, want %q", labels, wantLabels)
	}

	monday := prog.Days[0]
	if monday.ID != "monday" {
		t.Errorf("Monday ID = %q, want %q", monday.ID, "monday")
	}
	if len(monday.Sessions) != 3 {
		t.Fatalf("Monday has %d sessions, want 3", len(monday.Sessions))
	}

	opening := monday.Sessions[1]
	if opening.Kind != programme.KindPlenary || opening.Chair != "Prof. Lee, Chair" {
		t.Errorf("opening = %+v", opening)
	}
	wantItem := programme.Item{
		Name:   "Dr Ada Byron",
		Detail: "Dept. of Maths, Univ. of London",
		Start:  "09:05",
		End:    "09:45",
		Title:  `Engines that "think"`,
	}
	if len(opening.Items) != 1 || opening.Items[0] != wantItem {
		t.Errorf("opening items = %+v, want [%+v]", opening.Items, wantItem)
	}

	if k := monday.Sessions[0].Kind; k != programme.KindIntermission {
		t.Errorf("first session kind = %v, want intermission", k)
	}
	if k := prog.Days[1].Sessions[0].Kind; k != programme.KindParallel {
		t.Errorf("main session kind = %v, want parallel", k)
	}
	if d := prog.Days[1].Sessions[0].Items[0].Detail; d != "Bloggs & Co, Ltd" {
		t.Errorf("detail = %q", d)
	}

	activities := prog.Days[2]
	if activities.ID != "activities" || len(activities.Sessions) != 1 {
		t.Fatalf("activity area = %+v", activities)
	}
	if s := activities.Sessions[0]; s.Kind != programme.KindActivity || len(s.Items) != 1 || s.Items[0].Name != "Optics lab" {
		t.Errorf("activity session = %+v", s)
	}

	sponsors := prog.Days[3]
	if len(sponsors.Sessions) != 1 || sponsors.Sessions[0].Kind != programme.KindSponsor {
		t.Fatalf("sponsor day sessions = %+v", sponsors.Sessions)
	}
	// The small area sits above the full-width one, so the second logo
	// still lands in the full-width area.
	wantLogos := []programme.Logo{
		{Image: "img/acme.png", Link: "https://acme.example"},
		{Image: "img/widgets.png", Link: "https://widgets.example"},
	}
	if got := sponsors.Sessions[0].Logos.Logos; !reflect.DeepEqual(got, wantLogos) {
		t.Errorf("full area logos = %+v, want %+v", got, wantLogos)
	}
	if len(sponsors.Sponsors) != 1 || len(sponsors.Sponsors[0].Logos) != 0 {
		t.Errorf("small areas = %+v", sponsors.Sponsors)
	}

	want := programme.Counts{Days: 4, Sessions: 6, Items: 4, Logos: 2}
	if got := prog.Count(); got != want {
		t.Errorf("Count() = %+v, want %+v", got, want)
	}
}

func TestBuild_SpeakerAfterEmptyDay(t *testing.T) {
	table := csv.Table{
		{"Mon", "day"},
		{"S1", "parallel session", "", "09:00", "10:00"},
		{"Tue", "day"},
		{"Late", "speaker", "", "10:00", "10:10", "Talk"},
	}

	prog, err := programme.Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if n := len(prog.Days[0].Sessions[0].Items); n != 1 {
		t.Errorf("Monday session has %d items, want 1", n)
	}
}

func TestBuild_SmallSponsorArea(t *testing.T) {
	table := csv.Table{
		{"Mon", "day"},
		{"Silver", "small sponsor area"},
		{"Acme", "sponsor logo", "https://acme.example", "", "", "acme.png"},
	}

	prog, err := programme.Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	areas := prog.Days[0].Sponsors
	if len(areas) != 1 || len(areas[0].Logos) != 1 || areas[0].Logos[0].Image != "acme.png" {
		t.Errorf("sponsor areas = %+v", areas)
	}
}

func TestBuild_NoActivityArea(t *testing.T) {
	table := csv.Table{
		{"Mon", "day"},
		{"Tours", "activity day"},
		{"Lab", "activity"},
	}

	prog, err := programme.Build(table)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(prog.Days) != 1 || len(prog.Days[0].Sessions) != 1 {
		t.Errorf("days = %+v", prog.Days)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		table    csv.Table
		wantErr  error
		wantLine int
	}{
		{
			name:     "session before day",
			table:    csv.Table{{"x"}, {"S", "plenary session"}},
			wantErr:  programme.ErrNoDay,
			wantLine: 1,
		},
		{
			name:     "speaker before session",
			table:    csv.Table{{"Mon", "day"}, {"A", "speaker"}},
			wantErr:  programme.ErrNoSession,
			wantLine: 1,
		},
		{
			name:     "logo before area",
			table:    csv.Table{{"Mon", "day"}, {"Acme", "sponsor logo"}},
			wantErr:  programme.ErrNoLogoArea,
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := programme.Build(tt.table)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			var re *programme.RowError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not *RowError", err)
			}
			if re.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", re.Line, tt.wantLine)
			}
		})
	}
}

func TestSessionKind_String(t *testing.T) {
	tests := []struct {
		kind programme.SessionKind
		want string
	}{
		{programme.KindParallel, "parallel"},
		{programme.KindPlenary, "plenary"},
		{programme.KindIntermission, "intermission"},
		{programme.KindActivity, "activity"},
		{programme.KindSponsor, "sponsor"},
		{programme.SessionKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SessionKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
