package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"

	"termsim/internal/batch"
	"termsim/internal/config"
	"termsim/internal/logging"
	"termsim/internal/model"
	"termsim/internal/shell"
	"termsim/internal/tui"
	"termsim/internal/web"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "termsim",
		Repository: "termsim",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/termsim/termsim/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: termsim [options]\n\n")
		fmt.Fprintf(os.Stderr, "termsim is a terminal simulator with an in-memory filesystem.\n")
		fmt.Fprintf(os.Stderr, "Commands run against a virtual tree; nothing touches your disk.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termsim                       # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  termsim -b < script.txt       # Run a script and print the output\n")
		fmt.Fprintf(os.Stderr, "  termsim -b -s script.txt -j   # Run a script and print the final state as JSON\n")
		fmt.Fprintf(os.Stderr, "  termsim --web --addr :9000    # Serve the terminal over HTTP\n")
	}

	batchFlag := pflag.BoolP("batch", "b", false, "Run commands from stdin (or --script) and print the output")
	scriptFlag := pflag.StringP("script", "s", "", "Read batch commands from this file instead of stdin")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the final state as JSON (batch mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save batch output to the specified file")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	pflag.String("addr", "", "Listen address for Web Mode (default 127.0.0.1:8080)")
	pflag.StringP("theme", "t", "", "Initial theme: classic, modern, light, retro")
	configFlag := pflag.StringP("config", "c", "", "Path to config.yaml")
	pflag.String("log-file", "", "Write logs to this file (disabled by default)")
	pflag.String("log-level", "", "Log level: debug, info, warn, error")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("termsim version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load(*configFlag, pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Log.Logging()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	sh := shell.New()
	ctrl := shell.NewController(sh, shell.NewState(cfg.Theme, sh.Now()))
	logging.L().Info("termsim starting",
		zap.String("version", model.Version),
		zap.String("theme", cfg.Theme))

	if *webFlag {
		runWebMode(ctrl, cfg.Web.Addr)
		return
	}

	if *batchFlag || *jsonFlag || *scriptFlag != "" {
		if err := runBatchMode(ctrl, *scriptFlag, *outputFlag, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logging.Sync()
			os.Exit(1)
		}
		return
	}

	// Default: TUI
	runTuiMode(ctrl, cfg.Hostname)
}

func runWebMode(ctrl *shell.Controller, addr string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting termsim web server at http://%s\n", addr)
	if err := web.NewServer(ctrl, logging.L()).ListenAndServe(ctx, addr); err != nil {
		logging.L().Error("web server error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

func runBatchMode(ctrl *shell.Controller, scriptFile, outputFile string, asJSON bool) error {
	var in io.Reader = os.Stdin
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := batch.Run(ctrl, in); err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	write := batch.WriteText
	if asJSON {
		write = batch.WriteJSON
	}
	if err := write(out, ctrl.State()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if outputFile != "" {
		fmt.Printf("Output saved to %s\n", outputFile)
	}
	return nil
}

func runTuiMode(ctrl *shell.Controller, hostname string) {
	m := tui.InitialModel(ctrl, hostname)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
