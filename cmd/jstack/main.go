// Program jstack checks, formats, and queries JSON documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jstack"
	"github.com/creachadair/jstack/cursor"
)

// cli defines the command-line interface.
type cli struct {
	Check checkCmd `cmd:"" help:"Check that files contain valid JSON."`
	Fmt   fmtCmd   `cmd:"" help:"Reformat a JSON document."`
	Get   getCmd   `cmd:"" help:"Print the value at a path in a JSON document."`
}

// env carries the I/O streams used by commands.
type env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// exitCode is the panic value used to unwind from kong's exit hook.
type exitCode int

func main() {
	os.Exit(run(os.Args[1:], &env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}))
}

// run parses args and runs the selected command, returning its exit status.
func run(args []string, e *env) (code int) {
	defer func() {
		if x := recover(); x != nil {
			c, ok := x.(exitCode)
			if !ok {
				panic(x)
			}
			code = int(c)
		}
	}()

	var c cli
	parser, err := kong.New(&c,
		kong.Name("jstack"),
		kong.Description("Check, format, and query JSON documents."),
		kong.Writers(e.Stdout, e.Stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
		kong.UsageOnError(),
	)
	if err != nil {
		panic(err) // the cli struct is invalid
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(e))
	return 0
}

// readInput reads the named file, or standard input if path is "-".
func (e *env) readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(e.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	return string(data), err
}

// parseInput reads and parses the named input. A syntax error is reported
// to stderr with an excerpt of the input.
func (e *env) parseInput(path string) (jstack.Value, error) {
	text, err := e.readInput(path)
	if err != nil {
		return nil, err
	}
	v, err := jstack.Parse(text)
	var serr *jstack.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintf(e.Stderr, "%s: %s\n  in %s\n%s\n", path, serr.Kind.String(), serr.TrailString(), serr.Excerpt(text))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, err
}

type checkCmd struct {
	Files []string `arg:"" name:"file" help:"Files to check, or - for stdin."`
}

func (c *checkCmd) Run(e *env) error {
	var nbad int
	for _, path := range c.Files {
		if _, err := e.parseInput(path); err != nil {
			var serr *jstack.SyntaxError
			if !errors.As(err, &serr) {
				fmt.Fprintf(e.Stderr, "%s: %v\n", path, err)
			}
			nbad++
			continue
		}
		fmt.Fprintf(e.Stdout, "%s: ok\n", path)
	}
	if nbad != 0 {
		return fmt.Errorf("%d of %d files failed", nbad, len(c.Files))
	}
	return nil
}

type fmtCmd struct {
	Indent int      `short:"n" xor:"indent" help:"Indent by this many spaces (0 for compact)."`
	Tab    bool     `short:"t" xor:"indent" help:"Indent with tabs."`
	Keys   []string `short:"k" help:"Keep only object members with these keys."`
	File   string   `arg:"" optional:"" default:"-" help:"Input file, or - for stdin."`
}

func (c *fmtCmd) Run(e *env) error {
	v, err := e.parseInput(c.File)
	if err != nil {
		return err
	}
	s := jstack.Stringifier{Indent: jstack.Spaces(c.Indent)}
	if c.Tab {
		s.Indent = "\t"
	}
	if len(c.Keys) != 0 {
		s.Transform = jstack.AllowKeys(c.Keys...)
	}
	fmt.Fprintln(e.Stdout, s.Stringify(v))
	return nil
}

type getCmd struct {
	File string   `arg:"" help:"Input file, or - for stdin."`
	Path []string `arg:"" optional:"" help:"Path of object keys and array offsets."`
}

func (c *getCmd) Run(e *env) error {
	v, err := e.parseInput(c.File)
	if err != nil {
		return err
	}
	path := make([]any, len(c.Path))
	for i, elt := range c.Path {
		if n, err := strconv.Atoi(elt); err == nil {
			path[i] = n
		} else {
			path[i] = elt
		}
	}
	cur := cursor.New(v).Down(path...)
	if err := cur.Err(); err != nil {
		return fmt.Errorf("path %q: %w", c.Path, err)
	}
	fmt.Fprintln(e.Stdout, cur.Value().JSON())
	return nil
}
