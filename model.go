package butdiff

// UnifiedDiff is the result the version-control layer produces for one
// file. It is exactly one of Binary, TooLarge or Patch; consumers branch
// with a type switch.
type UnifiedDiff interface {
	unifiedDiff()
}

// Binary marks a file whose content cannot be shown as text.
type Binary struct{}

// TooLarge marks a file whose patch exceeded the size limit.
type TooLarge struct {
	SizeInBytes uint64
}

// Patch carries the hunks of a text change.
type Patch struct {
	Hunks                            []DiffHunk
	IsResultOfBinaryToTextConversion bool
	LinesAdded                       *int // nil if not computed
	LinesRemoved                     *int // nil if not computed
}

func (Binary) unifiedDiff()   {}
func (TooLarge) unifiedDiff() {}
func (Patch) unifiedDiff()    {}

// FileChange pairs a file path with its diff.
type FileChange struct {
	OldPath string // empty for added files
	NewPath string // empty for deleted files
	Diff    UnifiedDiff
}

// Path returns the new path, or the old one for deletions.
func (f FileChange) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}
