package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mcncl/docdiff/internal/comparator"
	"github.com/mcncl/docdiff/internal/config"
	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
	"github.com/mcncl/docdiff/internal/reporter"
)

// CLI defines the command-line interface
var CLI struct {
	Left        string `help:"Path to the left document (JSON, XML, CSV or YAML)." short:"l" type:"path"`
	Right       string `help:"Path to the right document." short:"r" type:"path"`
	LeftFormat  string `help:"Format of the left document. Auto-detected when omitted." enum:"auto,json,xml,csv,yaml" default:"auto"`
	RightFormat string `help:"Format of the right document. Auto-detected when omitted." enum:"auto,json,xml,csv,yaml" default:"auto"`
	Output      string `help:"Report style: table, summary or json." short:"o" enum:",table,summary,json" default:""`
	NoColor     bool   `help:"Disable colored output."`
	Config      string `help:"Path to a config file. Searched for as .docdiff.yml when omitted." type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, pasting both documents on stdin." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("docdiff"),
		kong.Description("Compare two structured-data documents field by field"),
		kong.UsageOnError(),
	)

	// No arguments means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("docdiff version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Debug: CLI.Debug, Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: docdiff --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: config file first
// (explicit path or walk-up discovery), then CLI flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	if CLI.Output != "" {
		cfg.Output = CLI.Output
	}
	if CLI.NoColor {
		cfg.Color = "never"
	}
	if CLI.LeftFormat != "auto" {
		cfg.Formats.Left = CLI.LeftFormat
	}
	if CLI.RightFormat != "auto" {
		cfg.Formats.Right = CLI.RightFormat
	}
	return cfg, cfg.Validate()
}

// run executes the main program logic
func run(ctx *Context) error {
	opts := comparator.Options{
		LeftFormat:  ctx.Config.FormatHint("left"),
		RightFormat: ctx.Config.FormatHint("right"),
	}

	var report *models.ComparisonReport
	var err error

	switch {
	case CLI.Left != "" && CLI.Right != "":
		report, err = comparator.CompareFiles(CLI.Left, CLI.Right, opts)
	case CLI.Left != "" || CLI.Right != "":
		return errors.NewInputError("both sides are required: specify -l and -r together", errors.ErrNoInput)
	default:
		var left, right string
		left, right, err = readStdinDocuments()
		if err != nil {
			return err
		}
		report, err = comparator.CompareStrings(left, right, opts)
	}
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "compared %d fields (%d matching, %d differing)\n",
			report.Stats.Total, report.Stats.Matching, report.Stats.Differing)
	}

	colorEnabled := ctx.Config.ColorEnabled(os.Stdout.Fd())
	if colorEnabled {
		// fatih/color disables itself when stdout is not a terminal;
		// an explicit "always" must win over that.
		color.NoColor = false
	}

	rep := &reporter.Reporter{
		Mode:          reporter.Mode(ctx.Config.Output),
		Color:         colorEnabled,
		MaxValueWidth: ctx.Config.MaxValueWidth,
		ShowMatches:   ctx.Config.ShowMatches,
	}
	return rep.Render(os.Stdout, report)
}

// readStdinDocuments reads both documents from stdin. In interactive
// mode the user pastes the left document, finishes it with a blank line,
// then pastes the right document and ends with a blank line or Ctrl+D.
// Piped input is split the same way at the first blank line.
func readStdinDocuments() (string, string, error) {
	if CLI.Interactive {
		fmt.Fprintln(os.Stderr, "docdiff interactive mode")
		fmt.Fprintln(os.Stderr, "Paste the LEFT document, then press Enter on an empty line:")
	} else {
		stdinInfo, err := os.Stdin.Stat()
		if err != nil {
			return "", "", errors.NewInputError("failed to access stdin", err)
		}
		if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
			return "", "", errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	reader := bufio.NewReader(os.Stdin)
	left, err := readDocument(reader)
	if err != nil {
		return "", "", err
	}

	if CLI.Interactive {
		fmt.Fprintln(os.Stderr, "Paste the RIGHT document, then press Enter on an empty line (or Ctrl+D):")
	}
	right, err := readDocument(reader)
	if err != nil {
		return "", "", err
	}

	if strings.TrimSpace(left) == "" && strings.TrimSpace(right) == "" {
		return "", "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}
	return left, right, nil
}

// readDocument collects lines until the first blank line that follows
// content, or EOF.
func readDocument(reader *bufio.Reader) (string, error) {
	var b strings.Builder
	seenContent := false
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.NewInputError("error reading input", err)
		}
		blank := strings.TrimSpace(line) == ""
		if blank && seenContent {
			return b.String(), nil
		}
		if !blank {
			seenContent = true
			b.WriteString(line)
		}
		if err == io.EOF {
			return b.String(), nil
		}
	}
}
