package sheet

import "context"

const (
	ActionRFC2822      = "rfc2822"
	ActionISO8601      = "iso8601"
	ActionLeap         = "leap"
	ActionSpan         = "span"
	ActionAngle        = "angle"
	ActionOutputFormat = "outputformat"
)

type Entry struct {
	Action     string   // the action to perform based on the interpretation of the command
	Command    string   // the actual command used on the original line
	Operands   []string // date strings (or the format name) following the command
	LineNumber int
}

// Sheet is the parsed form of a date sheet: every recognized line, in order,
// plus warnings for lines that looked like directives but could not be used.
type Sheet struct {
	Entries  []Entry
	Warnings []string
}

type Receiver interface {
	Receive(sheet Sheet) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, receiver Receiver) error
}
