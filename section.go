package butdiff

// SectionType represents the kind of lines grouped in a ContentSection.
type SectionType int

// Section types.
const (
	SectionContext SectionType = iota
	SectionAddedLines
	SectionRemovedLines
)

func (s SectionType) String() string {
	switch s {
	case SectionAddedLines:
		return "AddedLines"
	case SectionRemovedLines:
		return "RemovedLines"
	default:
		return "Context"
	}
}

// ContentSection is a contiguous run of same-type lines ready for display.
type ContentSection struct {
	SectionType SectionType
	Lines       []SectionLine

	// Path names the file the lines come from, for syntax highlighting.
	// Empty when unknown.
	Path string
}

// SectionLine is one displayed line. Line numbers are nil when the line has
// no counterpart on that side.
type SectionLine struct {
	Content          string
	BeforeLineNumber *int
	AfterLineNumber  *int
}
