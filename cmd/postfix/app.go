package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/gabsfredes/postfix"
	"github.com/gabsfredes/postfix/internal/logs"
)

// flag names
const (
	logLevelFlagName    = "log-level"
	logFileFlagName     = "log-file"
	noColorFlagName     = "no-color"
	postfixOnlyFlagName = "postfix-only"
)

type tool struct {
	interactive bool
	postfixOnly bool
	logger      *slog.Logger
	closeLog    func() error
}

func newApp(interactive bool) *cli.App {
	t := &tool{
		interactive: interactive,
	}
	return &cli.App{
		Name:      "postfix",
		Usage:     "translate prefix arithmetic expressions into postfix notation",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Value:   "error",
				Usage:   "log level: debug, info, warn or error",
				EnvVars: []string{"POSTFIX_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    logFileFlagName,
				Usage:   "also write JSON logs to this file",
				EnvVars: []string{"POSTFIX_LOG_FILE"},
			},
			&cli.BoolFlag{
				Name:    noColorFlagName,
				Usage:   "disable colored diagnostics",
				EnvVars: []string{"POSTFIX_NO_COLOR"},
			},
			&cli.BoolFlag{
				Name:  postfixOnlyFlagName,
				Usage: "print only the postfix form",
			},
		},
		Before: t.before,
		After:  t.after,
		Action: t.translate,
		Commands: []*cli.Command{
			{
				Name:      "translate",
				Usage:     "print the tree and the postfix form of an expression",
				ArgsUsage: "[file]",
				Action:    t.translate,
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of an expression",
				ArgsUsage: "[file]",
				Action:    t.tokens,
			},
			{
				Name:      "samples",
				Usage:     "list the bundled samples, or translate one",
				ArgsUsage: "[name]",
				Action:    t.samples,
			},
		},
	}
}

func (t *tool) before(c *cli.Context) error {
	logger, closeFn, err := logs.New(logs.Options{
		Writer: c.App.ErrWriter,
		Level:  c.String(logLevelFlagName),
		File:   c.String(logFileFlagName),
	})
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	t.logger = logger
	t.closeLog = closeFn
	t.postfixOnly = c.Bool(postfixOnlyFlagName)
	color.NoColor = c.Bool(noColorFlagName) || !isTerminal(c.App.ErrWriter)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (t *tool) after(c *cli.Context) error {
	if t.closeLog == nil {
		return nil
	}
	return t.closeLog()
}

func (t *tool) readInput(c *cli.Context, name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(b), nil
}

func (t *tool) translate(c *cli.Context) error {
	if c.NArg() > 1 {
		return cli.Exit("expected at most one input file", 2)
	}
	if c.NArg() == 0 && t.interactive {
		return t.repl(c)
	}
	src, err := t.readInput(c, c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if !t.emit(c.App.Writer, c.App.ErrWriter, src) {
		return cli.Exit("", 1)
	}
	return nil
}

// emit translates src and prints the result. It reports whether a tree was
// built.
func (t *tool) emit(w, errw io.Writer, src string) bool {
	node, err := postfix.Parse(src, postfix.WithLogger(t.logger))
	if err != nil {
		reportDiagnostics(errw, err)
		if postfix.IsFatal(err) {
			return false
		}
	}
	if t.postfixOnly {
		fmt.Fprintln(w, postfix.Translate(node))
		return true
	}
	fmt.Fprintf(w, "Input: %v\nTree:\n", node)
	if err := postfix.PrintTree(w, node); err != nil {
		t.logger.Error("print tree", "error", err)
	}
	fmt.Fprintf(w, "Postfix: %s\n", postfix.Translate(node))
	return true
}

func reportDiagnostics(w io.Writer, err error) {
	var errs *postfix.Errors
	if !errors.As(err, &errs) {
		color.New(color.FgRed).Fprintln(w, err)
		return
	}
	for _, ic := range errs.Illegal() {
		color.New(color.FgYellow).Fprintln(w, ic)
	}
	if se := errs.Syntax(); se != nil {
		color.New(color.FgRed).Fprintln(w, se)
	}
}

func (t *tool) repl(c *cli.Context) error {
	scanner := bufio.NewScanner(c.App.Reader)
	for {
		fmt.Fprint(c.App.Writer, "> ")
		if !scanner.Scan() {
			break
		}
		if scanner.Text() == "" {
			continue
		}
		t.emit(c.App.Writer, c.App.ErrWriter, scanner.Text())
	}
	return scanner.Err()
}

func (t *tool) tokens(c *cli.Context) error {
	src, err := t.readInput(c, c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	toks, err := postfix.Tokenize(src, postfix.WithLogger(t.logger))
	if err != nil {
		reportDiagnostics(c.App.ErrWriter, err)
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Line", "Kind", "Text", "Value"})
	for _, tok := range toks {
		value := ""
		if tok.Kind == postfix.KindNumber {
			value = strconv.FormatInt(tok.Value, 10)
		}
		table.Append([]string{strconv.Itoa(tok.Line), tok.Kind.String(), tok.Text, value})
	}
	table.Render()
	return nil
}

func (t *tool) samples(c *cli.Context) error {
	if c.NArg() == 0 {
		samples, err := postfix.Samples()
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		for _, s := range samples {
			fmt.Fprintln(c.App.Writer, s.Name)
		}
		return nil
	}
	s, err := postfix.LookupSample(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if !t.emit(c.App.Writer, c.App.ErrWriter, s.Source) {
		return cli.Exit("", 1)
	}
	return nil
}
