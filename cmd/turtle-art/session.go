package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"turtle-art/internal/config"
	"turtle-art/internal/logging"
	"turtle-art/internal/render"
	"turtle-art/internal/turtle"
)

// session is one drawing run: a fresh turtle plus everything needed to export
// what it draws.
type session struct {
	cmd    *cobra.Command
	cfg    config.Config
	log    *logrus.Logger
	turtle *turtle.Recorder
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var log *logrus.Logger
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		log = logging.New(logrus.DebugLevel)
	} else if log, err = logging.Parse(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetOutput(cmd.ErrOrStderr())

	return &session{
		cmd:    cmd,
		cfg:    cfg,
		log:    log,
		turtle: turtle.NewRecorder(),
	}, nil
}

// finish prints the navigation instructions, exports the recorded path and
// reports where it went.
func (s *session) finish(instructions []string) error {
	out := s.cmd.OutOrStdout()
	for _, line := range instructions {
		fmt.Fprintln(out, line)
	}

	path := s.turtle.Path()
	st := turtle.Summarize(path)
	s.log.WithFields(logrus.Fields{
		"segments":   st.Segments,
		"ink_length": st.InkLength,
		"closed":     st.Closed,
	}).Debug("drawing finished")

	exporter := render.NewExporter(s.cfg, s.log)
	if err := exporter.WriteFile(s.cfg.Output, path); err != nil {
		return err
	}

	colors := make([]string, len(st.Colors))
	for i, c := range st.Colors {
		colors[i] = string(c)
	}
	fmt.Fprintf(out, "Artwork saved to %s\n", s.cfg.Output)
	fmt.Fprintf(out, "%d segments, %.2f units of ink, colors: %s\n",
		st.Segments, st.InkLength, strings.Join(colors, ", "))
	return nil
}
