// Command huffzip compresses and decompresses files with static Huffman
// coding.
//
// Usage:
//
//	huffzip [flags] <file>
//
// Compressing writes <file>.hz next to the input; decompressing strips the
// .hz suffix, or appends .out when there is none. A progress bar is rendered
// while the codec runs unless -q or -v is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/MeanZhang/huffzip"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFCF40"))
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E90FF"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F56"))
)

type cliConfig struct {
	input      string
	output     string
	decompress bool
	quiet      bool
	verbose    bool
}

type stats struct {
	inBytes  int64
	outBytes int64
	elapsed  time.Duration
}

func main() {
	decompress := flag.Bool("d", false, "decompress instead of compress")
	output := flag.String("o", "", "output path (default: input plus or minus the .hz suffix)")
	quiet := flag.Bool("q", false, "no progress display, no summary")
	verbose := flag.Bool("v", false, "debug logging to stderr (disables the progress display)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	cfg := cliConfig{
		input:      flag.Arg(0),
		output:     *output,
		decompress: *decompress,
		quiet:      *quiet,
		verbose:    *verbose,
	}
	if cfg.output == "" {
		cfg.output = defaultOutput(cfg.input, cfg.decompress)
	}

	if cfg.quiet || cfg.verbose {
		if err := runPlain(cfg); err != nil {
			fmt.Fprintln(os.Stderr, "huffzip:", err)
			os.Exit(1)
		}
		return
	}
	os.Exit(runTUI(cfg))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: huffzip [flags] <file>\n\nFlags:\n")
	flag.PrintDefaults()
}

func defaultOutput(input string, decompress bool) string {
	if !decompress {
		return input + ".hz"
	}
	if out, ok := strings.CutSuffix(input, ".hz"); ok && out != "" {
		return out
	}
	return input + ".out"
}

func runPlain(cfg cliConfig) error {
	st, err := execute(cfg, nil)
	if err != nil {
		return err
	}
	if !cfg.quiet {
		fmt.Println(summary(cfg, st))
	}
	return nil
}

func runTUI(cfg cliConfig) int {
	label := "Compressing " + cfg.input
	if cfg.decompress {
		label = "Decompressing " + cfg.input
	}
	prog := tea.NewProgram(newModel(label))

	go func() {
		st, err := execute(cfg, func(percent int) {
			prog.Send(progressMsg(percent))
		})
		if err != nil {
			prog.Send(doneMsg{err: err})
			return
		}
		prog.Send(doneMsg{result: summary(cfg, st)})
	}()

	final, err := prog.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffzip:", err)
		return 1
	}
	if m, ok := final.(model); ok {
		if m.aborted {
			// The worker may still be mid-write; drop the partial output.
			os.Remove(cfg.output)
			fmt.Fprintln(os.Stderr, "huffzip: aborted")
			return 1
		}
		if m.failed {
			return 1
		}
	}
	return 0
}

// execute opens the input and output files and runs the requested codec
// operation. The partial output file is removed on failure.
func execute(cfg cliConfig, onProgress huffzip.ProgressFunc) (stats, error) {
	var st stats

	in, err := os.Open(cfg.input)
	if err != nil {
		return st, err
	}
	defer in.Close()

	out, err := os.Create(cfg.output)
	if err != nil {
		return st, err
	}

	var opts []huffzip.Option
	if onProgress != nil {
		opts = append(opts, huffzip.WithProgress(onProgress))
	}
	if cfg.verbose {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, huffzip.WithLogger(logger))
	}

	start := time.Now()
	if cfg.decompress {
		err = huffzip.Decompress(in, out, opts...)
	} else {
		err = huffzip.Compress(in, out, opts...)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(cfg.output)
		return st, err
	}
	st.elapsed = time.Since(start)

	if info, err := in.Stat(); err == nil {
		st.inBytes = info.Size()
	}
	if info, err := os.Stat(cfg.output); err == nil {
		st.outBytes = info.Size()
	}
	return st, nil
}

func summary(cfg cliConfig, st stats) string {
	verb := "compressed"
	if cfg.decompress {
		verb = "decompressed"
	}
	return fmt.Sprintf("%s %s (%d bytes) to %s (%d bytes) in %s",
		verb, cfg.input, st.inBytes, cfg.output, st.outBytes,
		st.elapsed.Round(time.Millisecond))
}

// progressMsg carries a completion percentage from the codec goroutine.
type progressMsg int

// doneMsg reports the outcome of the codec goroutine.
type doneMsg struct {
	result string
	err    error
}

type model struct {
	bar     progress.Model
	label   string
	percent float64
	status  string
	done    bool
	failed  bool
	aborted bool
}

func newModel(label string) model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 50
	return model{bar: bar, label: label}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 6
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		m.percent = float64(msg) / 100
		return m, nil

	case doneMsg:
		m.done = true
		if msg.err != nil {
			m.failed = true
			m.status = errorStyle.Render("error: " + msg.err.Error())
		} else {
			m.percent = 1
			m.status = resultStyle.Render(msg.result)
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(m.label) + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(m.percent) + "\n")
	if m.done {
		b.WriteString("\n  " + m.status + "\n")
	}
	return b.String()
}
