// anonitergen generates the wrapper types of package anoniter,
// one per arity, along with their tests.
//
// It's run with go generate from the root of the module.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/log/silog"
)

func main() {
	var cmd generateCmd
	kctx := kong.Parse(&cmd,
		kong.Name("anonitergen"),
		kong.Description("Generates anoniter wrapper types for a range of arities."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(kctx.Run(newLogger(os.Stderr, cmd.Verbose)))
}

// newLogger builds the logger for the command.
// Debug messages are logged only if verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Colors only if writing to a terminal.
	style := silog.PlainStyle(nil)
	if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		style = silog.DefaultStyle(nil)
	}

	return slog.New(silog.NewHandler(w, &silog.HandlerOptions{
		Level:       level,
		Style:       style,
		ReplaceAttr: dropTime,
	}))
}

func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

type generateCmd struct {
	Min int `default:"2" help:"Smallest arity to generate."`
	Max int `default:"12" help:"Largest arity to generate."`

	Package    string `default:"anoniter" help:"Package name of the generated code."`
	ImportPath string `default:"go.abhg.dev/anoniter" help:"Import path of the package, used by the generated tests."`

	Out     string `default:"iter_gen.go" help:"File to write the wrapper types to."`
	TestOut string `default:"iter_gen_test.go" help:"File to write tests for the wrapper types to. Empty to skip."`

	Verbose bool `short:"v" help:"Log debug output."`
}

func (cmd *generateCmd) Validate() (err error) {
	if cmd.Min < 2 {
		err = errors.Join(err, fmt.Errorf("--min must be at least 2, got %d", cmd.Min))
	}
	if cmd.Max < cmd.Min {
		err = errors.Join(err, fmt.Errorf("--max (%d) must not be less than --min (%d)", cmd.Max, cmd.Min))
	}
	if cmd.Package == "" {
		err = errors.Join(err, errors.New("--package is required"))
	}
	if cmd.Out == "" {
		err = errors.Join(err, errors.New("--out is required"))
	}
	return err
}

func (cmd *generateCmd) Run(log *slog.Logger) error {
	data := fileData{
		Package:    cmd.Package,
		ImportPath: cmd.ImportPath,
		Arities:    arities(cmd.Min, cmd.Max),
	}

	outputs := []struct {
		template string
		path     string
	}{
		{"iter.go.tmpl", cmd.Out},
		{"iter_test.go.tmpl", cmd.TestOut},
	}
	for _, o := range outputs {
		if o.path == "" {
			log.Debug("Skipping template: no output file", "template", o.template)
			continue
		}

		if err := writeFile(o.path, o.template, data); err != nil {
			return err
		}
		log.Debug("Wrote file", "path", o.path, "min", cmd.Min, "max", cmd.Max)
	}

	return nil
}

// writeFile renders a template to path.
// path is left untouched if rendering fails.
func writeFile(path, template string, data fileData) error {
	var buf bytes.Buffer
	if err := render(&buf, template, data); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %v: %w", path, err)
	}
	return nil
}
