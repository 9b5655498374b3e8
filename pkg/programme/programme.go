// Package programme builds a conference programme model from a tokenized
// CSV table.
//
// Column 1 of every row names its type. The remaining columns are read by
// position:
//
//	index 0  label or name
//	index 1  row type
//	index 2  chair, speaker detail, or sponsor link
//	index 3  start time
//	index 4  end time
//	index 5  day anchor id, talk title, or sponsor logo image
package programme

// Row types recognised in column 1.
const (
	TypeDay             = "day"
	TypeBreak           = "break"
	TypePlenarySession  = "plenary session"
	TypeMainSession     = "main session"
	TypeParallelSession = "parallel session"
	TypeSpeaker         = "speaker"

	TypeActivityArea = "activity area"
	TypeActivityDay  = "activity day"
	TypeActivity     = "activity"

	TypeSponsorDay       = "sponsorday"
	TypeSponsorLogo      = "sponsor logo"
	TypeSmallSponsorArea = "small sponsor area"
	TypeFullSponsorArea  = "full sponsor area"
)

// SessionKind distinguishes how a session is presented.
type SessionKind int

const (
	// KindParallel is a main or parallel session.
	KindParallel SessionKind = iota
	// KindPlenary is a plenary session.
	KindPlenary
	// KindIntermission is a break.
	KindIntermission
	// KindActivity groups activities under an activity day.
	KindActivity
	// KindSponsor is a full-width sponsor area.
	KindSponsor
)

var sessionKindNames = [...]string{
	KindParallel:     "parallel",
	KindPlenary:      "plenary",
	KindIntermission: "intermission",
	KindActivity:     "activity",
	KindSponsor:      "sponsor",
}

// String returns the presentation class of the kind.
func (k SessionKind) String() string {
	if k >= 0 && int(k) < len(sessionKindNames) {
		return sessionKindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k SessionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Programme is the whole conference programme in display order.
type Programme struct {
	Days []*Day `json:"days"`
}

// Day is a day heading, the activity area or a sponsor day.
type Day struct {
	ID       string         `json:"id,omitempty"`
	Label    string         `json:"label"`
	Sponsors []*SponsorArea `json:"sponsors,omitempty"`
	Sessions []*Session     `json:"sessions,omitempty"`
}

// Session is a block within a day.
type Session struct {
	Kind  SessionKind `json:"kind"`
	Name  string      `json:"name,omitempty"`
	Chair string      `json:"chair,omitempty"`
	Start string      `json:"start,omitempty"`
	End   string      `json:"end,omitempty"`
	Items []Item      `json:"items,omitempty"`

	// Logos is only used by KindSponsor sessions.
	Logos *SponsorArea `json:"logos,omitempty"`
}

// Item is a talk or an activity.
type Item struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Title  string `json:"title,omitempty"`
}

// SponsorArea holds sponsor logos.
type SponsorArea struct {
	Logos []Logo `json:"logos"`
}

// Logo is a sponsor image linking to the sponsor's site.
type Logo struct {
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}

// Counts summarises a programme.
type Counts struct {
	Days     int
	Sessions int
	Items    int
	Logos    int
}

// Count tallies days, sessions, items and logos.
func (p *Programme) Count() Counts {
	var c Counts
	for _, day := range p.Days {
		c.Days++
		for _, area := range day.Sponsors {
			c.Logos += len(area.Logos)
		}
		for _, s := range day.Sessions {
			c.Sessions++
			c.Items += len(s.Items)
			if s.Logos != nil {
				c.Logos += len(s.Logos.Logos)
			}
		}
	}
	return c
}
