package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"github.com/CrestNiraj12/glue/app"
	"github.com/CrestNiraj12/glue/domain"
	"github.com/CrestNiraj12/glue/infra/browser"
	"github.com/CrestNiraj12/glue/infra/clipboard"
	"github.com/CrestNiraj12/glue/infra/config"
	"github.com/CrestNiraj12/glue/infra/editor"
	"github.com/CrestNiraj12/glue/infra/logger"
	"github.com/CrestNiraj12/glue/infra/notify"
	"github.com/CrestNiraj12/glue/infra/paste"
	"github.com/CrestNiraj12/glue/infra/selection"
	"github.com/CrestNiraj12/glue/tui"
	"github.com/CrestNiraj12/glue/tui/dialog"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

type cliOptions struct {
	path       string // File to upload, "-" for stdin, "" to compose
	regions    []selection.Region
	filename   string
	configPath string
	inline     bool
	plain      bool
	verbose    bool
}

type regionFlag struct {
	regions *[]selection.Region
}

func (f regionFlag) String() string { return "" }

func (f regionFlag) Set(s string) error {
	r, err := selection.ParseRegion(s)
	if err != nil {
		return err
	}
	*f.regions = append(*f.regions, r)
	return nil
}

func parseCLIArgs(args []string) (cliMode, cliOptions, string) {
	var opts cliOptions
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-version", "-v":
			return cliVersion, opts, ""
		case "--help", "-h", "help":
			return cliHelp, opts, ""
		}
	}

	fs := flag.NewFlagSet("glue", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(regionFlag{regions: &opts.regions}, "region", "Selected region begin:end in characters (repeatable)")
	fs.StringVar(&opts.filename, "filename", "", "File name to send with the snippet")
	fs.StringVar(&opts.configPath, "config", "", "Path to settings.json")
	fs.BoolVar(&opts.inline, "inline", false, "Compose in an inline editor instead of $EDITOR")
	fs.BoolVar(&opts.plain, "plain", false, "No TUI; print the URL on stdout")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log to stderr")
	if err := fs.Parse(args); err != nil {
		return cliInvalid, opts, err.Error()
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.path = rest[0]
	default:
		return cliInvalid, opts, fmt.Sprintf("unexpected argument: %s", strings.Join(rest[1:], " "))
	}
	return cliRun, opts, ""
}

func usage() string {
	return `Usage: glue [flags] [file|-]

Uploads a file, stdin or a freshly composed snippet to Glue and prints its URL.

Flags:
  --region b:e     upload only characters b..e (repeatable)
  --filename name  file name sent with the snippet
  --config path    settings file (default ~/.config/glue/settings.json)
  --inline         compose inline instead of $EDITOR
  --plain          no TUI; print the URL on stdout
  --verbose        log to stderr
  --version, -v
  --help, -h`
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readSnippet returns the parts and file name for a file or stdin source.
func readSnippet(opts cliOptions, stdin io.Reader) ([]string, string, error) {
	var (
		data []byte
		err  error
	)
	if opts.path == "" || opts.path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading snippet: %w", err)
	}
	parts := selection.Parts(string(data), opts.regions)
	if strings.TrimSpace(strings.Join(parts, "")) == "" {
		return nil, "", domain.ErrEmptySnippet
	}

	filename := opts.filename
	if filename == "" {
		filename = selection.Filename(opts.path)
	}
	return parts, filename, nil
}

func main() {
	mode, opts, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("Glue %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	os.Exit(run(opts))
}

func run(opts cliOptions) int {
	// 1. Load config from settings file and environment.
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, closer := logger.New(logger.Options{Dir: cfg.StateDir, Verbose: opts.verbose, Stderr: os.Stderr})
	defer closer.Close()

	stdinTTY, stdoutTTY := isTerminal(os.Stdin), isTerminal(os.Stdout)
	interactive := stdinTTY && stdoutTTY && !opts.plain

	// 2. Gather the snippet unless it will be composed.
	var (
		parts    []string
		filename = opts.filename
	)
	if opts.path != "" || !stdinTTY {
		parts, filename, err = readSnippet(opts, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "glue: %v\n", err)
			return 1
		}
	}

	// 3. Build infrastructure.
	width, _, err := term.GetSize(os.Stderr.Fd())
	if err != nil {
		width = 0
	}
	opener := browser.NewOpener()
	status := notify.StatusLine{Out: os.Stderr, Width: width}

	var desktop, dlg app.Notifier
	if d, ok := notify.LookupDesktop(cfg.NotificationSounds); ok {
		desktop = d
	}
	if stdinTTY && stdoutTTY {
		dlg = dialog.NewNotifier(opener, os.Stdin, os.Stdout)
	}
	sel, err := notify.Select(cfg.Notifier, status, desktop, dlg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notifier: %v\n", err)
		return 1
	}

	glue := app.New(app.Deps{
		Config:    cfg,
		Uploader:  paste.NewUploader(nil),
		Clipboard: clipboard.NewService(),
		Browser:   opener,
		Status:    sel.Status,
		Popup:     sel.Popup,
		Log:       log,
	})
	ed := editor.NewEnvEditor()
	var composer app.Composer = ed

	// 4. Upload.
	var res domain.UploadResult
	switch {
	case interactive:
		p := tea.NewProgram(tui.NewApp(tui.Deps{
			Uploader: glue,
			Editor:   ed,
			Parts:    parts,
			Filename: filename,
			Inline:   opts.inline,
		}))
		final, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "glue: %v\n", err)
			return 1
		}
		root := final.(tui.App)
		if root.Cancelled() {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return 1
		}
		res = root.Result()

	case parts == nil:
		content, err := composer.Compose(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "glue: %v\n", err)
			return 1
		}
		if content == "" {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return 1
		}
		res = glue.Upload(context.Background(), []string{content}, filename)

	default:
		res = glue.Upload(context.Background(), parts, filename)
	}

	// 5. Deliver.
	if err := glue.Deliver(res); err != nil {
		fmt.Fprintf(os.Stderr, "glue: %v\n", err)
	}
	if !res.Succeeded() {
		if errors.Is(res.Err, domain.ErrConfiguration) {
			fmt.Fprintln(os.Stderr, "Set api_key and paste_url in your settings file or GLUE_* environment.")
		}
		return 1
	}
	if !stdoutTTY || opts.plain {
		fmt.Println(res.URL)
	}
	return 0
}
