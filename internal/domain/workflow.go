package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"webch.dev/pkg/webch/internal/adapter"
	"webch.dev/pkg/webch/internal/controller"
	m "webch.dev/pkg/webch/internal/model"
)

// RunArgs carries everything one invocation of the merge pipeline needs.
type RunArgs struct {
	// WebFile is the base text all change files are applied to.
	WebFile m.Path
	// ChangeFiles are applied cumulatively, in order: each one operates on
	// the previous one's output.
	ChangeFiles []m.Path
	// Directory, when set, becomes the working directory before any file
	// access.
	Directory m.Path
	// Output selects the renderer: "" is the annotated listing on Out, "-"
	// is the raw renderer on Out, anything else is the raw renderer into
	// that file.
	Output m.Path
	// Report, when set, receives the per-change-file statistics as YAML.
	Report m.Path
	// TUI opens the listing in an interactive pager instead of writing it.
	TUI bool
	// Out is the stream used when Output does not name a file.
	Out io.Writer
}

// Workflow runs the whole merge pipeline: load the base text, apply every
// change file in order, hand the final text to exactly one renderer.
type Workflow interface {
	Run(args RunArgs) error
}

type workflow struct {
	fs adapter.FileAdapter
	ui controller.UI
}

// NewWorkflow wires the workflow with its collaborators.
func NewWorkflow(fs adapter.FileAdapter, ui controller.UI) Workflow {
	return &workflow{fs: fs, ui: ui}
}

func (w *workflow) Run(args RunArgs) error {
	if args.Directory != "" {
		w.ui.Infof("Working directory: %s", args.Directory)
		if err := w.fs.Chdir(args.Directory); err != nil {
			return err
		}
	}

	w.ui.Infof("Web file: %s", args.WebFile)
	text, err := w.fs.ReadLines(args.WebFile)
	if err != nil {
		return err
	}
	slog.Info("loaded web file", "path", args.WebFile, "lines", len(text))

	stats := make([]m.ApplyStats, 0, len(args.ChangeFiles))
	for _, changeFile := range args.ChangeFiles {
		w.ui.Infof("Change file: %s", changeFile)

		next, stat, err := w.applyChangeFile(text, changeFile)
		if err != nil {
			return err
		}

		stats = append(stats, stat)
		text = next
	}

	if err := w.render(args, text); err != nil {
		return err
	}

	w.ui.DisplaySummary(stats)

	if args.Report != "" {
		if err := w.writeReport(args.Report, stats); err != nil {
			return err
		}
	}

	return nil
}

// applyChangeFile reads, parses and applies one change file against text.
// The application is failed-atomic: on any error the input text is the only
// defined state.
func (w *workflow) applyChangeFile(text []m.Line, changeFile m.Path) ([]m.Line, m.ApplyStats, error) {
	lines, err := w.fs.ReadLines(changeFile)
	if err != nil {
		return nil, m.ApplyStats{}, err
	}

	sections, warnings, err := ParseSections(lines)
	if err != nil {
		return nil, m.ApplyStats{}, err
	}
	for _, warning := range warnings {
		w.ui.Warnf("%s", warning)
		slog.Warn("change file diagnostic", "file", warning.File, "message", warning.Message)
	}

	next, err := Apply(text, sections)
	if err != nil {
		var noMatch *NoMatchError
		if errors.As(err, &noMatch) && noMatch.Hint != "" {
			slog.Debug("closest candidate for failed section", "file", noMatch.File, "line", noMatch.Num, "diff", noMatch.Hint)
		}
		return nil, m.ApplyStats{}, err
	}

	stat := m.ApplyStats{ChangeFile: changeFile, Sections: len(sections)}
	for _, section := range sections {
		stat.Removed += len(section.Old)
		stat.Added += len(section.New)
	}
	slog.Debug("applied change file", "path", changeFile,
		"sections", stat.Sections, "removed", stat.Removed, "added", stat.Added)

	return next, stat, nil
}

func (w *workflow) render(args RunArgs, lines []m.Line) error {
	if args.TUI {
		return controller.NewTUI().Show(string(args.WebFile), lines)
	}

	switch args.Output {
	case "":
		return controller.NewListingRenderer().Render(args.Out, lines)
	case "-":
		return controller.NewRawRenderer().Render(args.Out, lines)
	default:
		w.ui.Infof("Output file: %s", args.Output)
		f, err := w.fs.Create(args.Output)
		if err != nil {
			return err
		}
		if err := controller.NewRawRenderer().Render(f, lines); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
}

// writeReport stores the per-change-file statistics as YAML.
func (w *workflow) writeReport(path m.Path, stats []m.ApplyStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return w.fs.WriteFile(path, data, 0o644)
}
