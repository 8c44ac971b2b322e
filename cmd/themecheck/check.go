package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/manutortosa-collab/themecheck"
)

// CheckCmd runs the full quality suite over a theme repository.
type CheckCmd struct {
	Root    string `kong:"env='THEME_ROOT',name='root',arg,optional,default='.',help='Theme repository root.'"`
	Config  string `kong:"env='THEMECHECK_CONFIG',name='config',help='Configuration file (default: <root>/themecheck.toml).'"`
	Plain   bool   `kong:"name='plain',help='Disable colors and the live status line.'"`
	Verbose bool   `kong:"name='verbose',short='v',help='Enable debug logging.'"`
}

// Run executes the check command.
func (cmd CheckCmd) Run(ctx context.Context) error {
	theme, err := cmd.theme()
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cmd.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var sink themecheck.ReportSink
	color := false
	if !cmd.Plain && themecheck.IsTerminal(os.Stdout) {
		sink = &themecheck.ConsoleSink{W: os.Stdout}
		color = true
	} else {
		sink = &themecheck.PlainSink{W: os.Stdout}
	}

	suite := themecheck.Suite{
		Checks: theme.Checks(),
		Runner: themecheck.Runner{
			Sink:    sink,
			BaseDir: string(theme.Root),
			Color:   color,
			Log:     log,
		},
	}

	if !suite.Run(ctx) {
		return themecheck.ErrChecksFailed
	}
	return nil
}

// ListCmd prints the checks in the order they would run.
type ListCmd struct {
	Root   string `kong:"env='THEME_ROOT',name='root',arg,optional,default='.',help='Theme repository root.'"`
	Config string `kong:"env='THEMECHECK_CONFIG',name='config',help='Configuration file (default: <root>/themecheck.toml).'"`
}

// Run executes the list command.
func (cmd ListCmd) Run(ctx context.Context) error {
	theme, err := CheckCmd{Root: cmd.Root, Config: cmd.Config}.theme()
	if err != nil {
		return err
	}
	for _, check := range theme.Checks() {
		if _, err := os.Stdout.WriteString(check.Describe() + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (cmd CheckCmd) theme() (*themecheck.Theme, error) {
	root := filepath.Clean(cmd.Root)

	// The implicit config in the theme root is optional; a path supplied
	// with --config must exist.
	configPath := cmd.Config
	if configPath == "" {
		configPath = filepath.Join(root, "themecheck.toml")
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}
	config, err := themecheck.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return themecheck.NewTheme(root, config), nil
}
