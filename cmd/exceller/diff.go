package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jsonexceller/exceller/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Schema == "" || cfg.Want == "" {
		return fmt.Errorf("%w: diff requires -schema and -want", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: diff takes at most one context file, got %v", cli.ErrUsage, args)
	}
	rCfg := &RunConfig{MainConfig: cfg.MainConfig, Schema: cfg.Schema}
	got, err := runSchema(rCfg, args)
	if err != nil {
		return err
	}
	want, err := getObjFile(cfg.Want)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.Want, err)
	}
	// re-encoding both sides normalizes formatting, so the diff only
	// reflects structural differences
	gotStr := encode.MustString(got, cfg.encOpts()...)
	wantStr := encode.MustString(want, cfg.encOpts()...)
	if gotStr == wantStr {
		return nil
	}
	if f, ok := cc.Out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(wantStr, gotStr, true)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprint(cc.Out, color.RedString("%s", d.Text))
		case diffpatch.DiffInsert:
			fmt.Fprint(cc.Out, color.GreenString("%s", d.Text))
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	fmt.Fprintln(cc.Out)
	return cli.ExitCodeErr(1)
}
