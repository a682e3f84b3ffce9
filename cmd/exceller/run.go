package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonexceller/exceller/encode"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
	"github.com/jsonexceller/exceller/transform"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: run requires -schema", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: run takes at most one context file, got %v", cli.ErrUsage, args)
	}
	res, err := runSchema(cfg, args)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

func runSchema(cfg *RunConfig, args []string) (*ir.Node, error) {
	schema, err := getObjFile(cfg.Schema)
	if err != nil {
		return nil, fmt.Errorf("error decoding schema %s: %w", cfg.Schema, err)
	}
	t, err := transform.New(schema)
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", cfg.Schema, err)
	}
	var env *eval.Env
	if len(args) == 1 {
		ctx, err := getObjFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("error decoding context %s: %w", args[0], err)
		}
		env = eval.NewEnv(ctx, nil)
	}
	res, err := t.Invoke(env)
	if err != nil {
		return nil, fmt.Errorf("error transforming: %w", err)
	}
	if res == nil {
		res = ir.Null()
	}
	return res, nil
}
