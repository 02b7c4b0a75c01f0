// Package cli implements the elementops command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/fabianp19/Linq/samples"
)

// CLI is the root command.
type CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"ELEMENTOPS_LOG_LEVEL" help:"Log level (${enum})"`
	Format   string `default:"text" enum:"text,json" env:"ELEMENTOPS_FORMAT" help:"Output format (${enum})"`

	List listCmd `cmd:"" help:"List the available samples"`
	Run  runCmd  `cmd:"" help:"Run samples by name, or all of them"`
}

// AfterApply sets up logging and output once flags are parsed.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(kctx.Stderr, &slog.HandlerOptions{Level: level}))
	kctx.Bind(log)
	kctx.Bind(&printer{w: kctx.Stdout, json: c.Format == "json"})
	return nil
}

type printer struct {
	w    io.Writer
	json bool
}

type outcome struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func (p *printer) print(o outcome) error {
	if p.json {
		return json.NewEncoder(p.w).Encode(o)
	}
	if o.Error != "" {
		_, err := fmt.Fprintf(p.w, "%s: error: %s\n", o.Name, o.Error)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s: %+v\n", o.Name, o.Value)
	return err
}

type listCmd struct{}

func (cmd *listCmd) Run(p *printer) error {
	for _, s := range samples.All() {
		if p.json {
			if err := json.NewEncoder(p.w).Encode(map[string]string{
				"name": s.Name, "description": s.Description,
			}); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(p.w, "%-40s %s\n", s.Name, s.Description); err != nil {
			return err
		}
	}
	return nil
}

type runCmd struct {
	Names []string `arg:"" optional:"" help:"Sample names (default: all)"`
}

func (cmd *runCmd) Run(ctx context.Context, log *slog.Logger, p *printer) error {
	todo := samples.All()
	if len(cmd.Names) > 0 {
		todo = todo[:0]
		for _, name := range cmd.Names {
			s, ok := samples.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown sample %q", name)
			}
			todo = append(todo, s)
		}
	}

	for _, s := range todo {
		log.DebugContext(ctx, "running sample", "name", s.Name)
		v, err := s.Run()
		o := outcome{Name: s.Name, Value: v}
		if err != nil {
			// the failing samples are expected to fail
			log.DebugContext(ctx, "sample failed", "name", s.Name, "err", err)
			o.Error = err.Error()
		}
		if err := p.print(o); err != nil {
			return err
		}
	}
	log.InfoContext(ctx, "samples done", "count", len(todo))
	return nil
}
