package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/gitbutlerapp/butdiff"
	"github.com/gitbutlerapp/butdiff/bubbletea"
	"github.com/gitbutlerapp/butdiff/chroma"
	"github.com/gitbutlerapp/butdiff/dmp"
	"github.com/gitbutlerapp/butdiff/gitdiff"
	"github.com/gitbutlerapp/butdiff/jsonl"
	"github.com/gitbutlerapp/butdiff/lipgloss"
	"github.com/gitbutlerapp/butdiff/logging"
	"github.com/gitbutlerapp/butdiff/myers"
	"github.com/gitbutlerapp/butdiff/rangeref"
	"github.com/gitbutlerapp/butdiff/section"
	"github.com/gitbutlerapp/butdiff/unified"
)

// ErrNoChanges is returned when the input contains nothing to show.
var ErrNoChanges = errors.New("no changes")

// App holds the dependencies shared by every subcommand. Nil fields are
// filled from configuration before a command runs.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Viewer       butdiff.Viewer
	ChangeParser butdiff.ChangeParser
	Tokenizer    butdiff.Tokenizer // nil disables highlighting

	theme  lipgloss.Theme
	logger *slog.Logger
}

// configure applies cfg and fills unset dependencies.
func (a *App) configure(cfg butdiff.Config) error {
	if a.Stderr == nil {
		a.Stderr = io.Discard
	}
	logger, err := logging.New(a.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return fmt.Errorf("configure theme: %w", err)
	}

	a.logger = logger
	a.theme = theme
	if a.ChangeParser == nil {
		a.ChangeParser = gitdiff.NewParser(
			gitdiff.WithMaxPatchBytes(cfg.MaxPatchBytes),
			gitdiff.WithLogger(logger),
		)
	}
	if a.Tokenizer == nil && cfg.Highlight {
		a.Tokenizer = chroma.NewTokenizer()
	}
	if a.Viewer == nil {
		opts := []bubbletea.Option{bubbletea.WithTheme(theme)}
		if a.Tokenizer != nil {
			opts = append(opts, bubbletea.WithTokenizer(a.Tokenizer))
		}
		a.Viewer = &bubbletea.Viewer{Options: opts}
	}
	return nil
}

// Lines prints the line diff of two files.
func (a *App) Lines(oldPath, newPath string) error {
	oldText, err := os.ReadFile(oldPath)
	if err != nil {
		return err
	}
	newText, err := os.ReadFile(newPath)
	if err != nil {
		return err
	}

	script := myers.NewLineDiffer().DiffText(string(oldText), string(newText))
	a.logger.Debug("line diff", "old", oldPath, "new", newPath, "groups", len(script), "distance", script.Distance())

	var b strings.Builder
	for _, g := range script {
		prefix := "  "
		switch g.Op {
		case butdiff.OpDelete:
			prefix = "- "
		case butdiff.OpInsert:
			prefix = "+ "
		}
		for _, line := range g.Items {
			b.WriteString(prefix + line + "\n")
		}
	}
	_, err = io.WriteString(a.Stdout, b.String())
	return err
}

// Text prints the character diff of two strings inline, marking deletions
// as [-x-] and insertions as {+y+}.
func (a *App) Text(oldText, newText string, cleanup bool) error {
	edits := dmp.NewTextDiffer().Diff(oldText, newText, cleanup)
	a.logger.Debug("text diff", "edits", len(edits), "cleanup", cleanup)

	var b strings.Builder
	for _, e := range edits {
		switch e.Op {
		case butdiff.OpDelete:
			b.WriteString("[-" + e.Text + "-]")
		case butdiff.OpInsert:
			b.WriteString("{+" + e.Text + "+}")
		default:
			b.WriteString(e.Text)
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(a.Stdout, b.String())
	return err
}

// Hunks parses a patch and prints its sections, or one reconstructed side
// when side is "before" or "after". syntax names the file or language used
// for highlighting; empty disables it.
func (a *App) Hunks(r io.Reader, side, syntax string) error {
	hunks, err := a.readHunks(r)
	if err != nil {
		return err
	}

	switch side {
	case "before":
		_, err = fmt.Fprintln(a.Stdout, section.Before(unified.PatchLines(hunks)))
		return err
	case "after":
		_, err = fmt.Fprintln(a.Stdout, section.After(unified.PatchLines(hunks)))
		return err
	case "":
	default:
		return fmt.Errorf("unknown side %q: want before or after", side)
	}

	var opts []lipgloss.Option
	if a.Tokenizer != nil {
		opts = append(opts, lipgloss.WithTokenizer(a.Tokenizer))
	}
	renderer := lipgloss.NewRenderer(a.theme, lg.NewRenderer(a.Stdout), opts...)
	for _, h := range hunks {
		if !h.Header.Known() {
			a.logger.Warn("hunk header has unknown numbers", "header", h.Header.String())
		}
		sections := withPath(section.Build(unified.PatchLines([]butdiff.UnifiedHunk{h})), syntax)
		if _, err := fmt.Fprintln(a.Stdout, renderer.Title(h.Header.String())); err != nil {
			return err
		}
		if len(sections) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(a.Stdout, renderer.Sections(sections)); err != nil {
			return err
		}
	}
	return nil
}

// Quote prints the patch lines selected by ref as one JSON line.
func (a *App) Quote(r io.Reader, ref string) error {
	indices := rangeref.NewCodec().Decode(ref)
	if indices == nil {
		return fmt.Errorf("unrecognized reference %q", ref)
	}
	hunks, err := a.readHunks(r)
	if err != nil {
		return err
	}

	a.logger.Debug("quote", "ref", ref, "spans", rangeref.Spans(indices))
	lines := unified.PatchLines(hunks)
	quoted := make(butdiff.DiffPatch, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(lines) {
			a.logger.Warn("quoted line out of range", "index", i, "lines", len(lines))
			continue
		}
		quoted = append(quoted, lines[i])
	}
	return jsonl.WritePatches(a.Stdout, []butdiff.DiffPatch{quoted})
}

// EncodeRef prints the reference for the given line indices.
func (a *App) EncodeRef(args []string) error {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", arg, err)
		}
		indices = append(indices, n)
	}
	_, err := fmt.Fprintln(a.Stdout, rangeref.NewCodec().Encode(indices))
	return err
}

// DecodeRef prints the indices behind ref, one per line.
func (a *App) DecodeRef(ref string) error {
	indices := rangeref.NewCodec().Decode(ref)
	if indices == nil {
		return fmt.Errorf("unrecognized reference %q", ref)
	}
	var b strings.Builder
	for _, i := range indices {
		b.WriteString(strconv.Itoa(i) + "\n")
	}
	_, err := io.WriteString(a.Stdout, b.String())
	return err
}

// Files classifies each file of git diff output and prints one JSON line
// per file.
func (a *App) Files(r io.Reader) error {
	changes, err := a.ChangeParser.Parse(r)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return ErrNoChanges
	}
	return jsonl.WriteFileChanges(a.Stdout, changes)
}

// View shows git diff output in the viewer.
func (a *App) View(ctx context.Context, r io.Reader) error {
	changes, err := a.ChangeParser.Parse(r)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return ErrNoChanges
	}

	var sections []butdiff.ContentSection
	for _, c := range changes {
		sections = append(sections, fileSections(c)...)
	}

	title := changes[0].Path()
	if len(changes) > 1 {
		title = fmt.Sprintf("%d files", len(changes))
	}
	return a.Viewer.View(ctx, title, sections)
}

// fileSections returns a heading for c followed by its content.
func fileSections(c butdiff.FileChange) []butdiff.ContentSection {
	sections := []butdiff.ContentSection{note("── " + c.Path())}
	switch d := c.Diff.(type) {
	case butdiff.Binary:
		sections = append(sections, note("(binary file)"))
	case butdiff.TooLarge:
		sections = append(sections, note(fmt.Sprintf("(diff too large: %d bytes)", d.SizeInBytes)))
	case butdiff.Patch:
		hunks := make([]butdiff.UnifiedHunk, 0, len(d.Hunks))
		for _, h := range d.Hunks {
			hunks = append(hunks, unified.ParseDiffHunk(h))
		}
		sections = append(sections, withPath(section.Build(unified.PatchLines(hunks)), c.Path())...)
	}
	return sections
}

func withPath(sections []butdiff.ContentSection, path string) []butdiff.ContentSection {
	for i := range sections {
		sections[i].Path = path
	}
	return sections
}

func note(text string) butdiff.ContentSection {
	return butdiff.ContentSection{
		SectionType: butdiff.SectionContext,
		Lines:       []butdiff.SectionLine{{Content: text}},
	}
}

// readHunks parses all of r as git patch text.
func (a *App) readHunks(r io.Reader) ([]butdiff.UnifiedHunk, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read patch: %w", err)
	}
	hunks := unified.ParsePatch(string(data))
	if len(hunks) == 0 {
		return nil, ErrNoChanges
	}
	added, removed := unified.CountChanges(hunks)
	a.logger.Debug("parsed patch", "hunks", len(hunks), "added", added, "removed", removed)
	return hunks, nil
}
