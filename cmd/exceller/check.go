package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonexceller/exceller/transform"
)

// check separates bad schemas from bad input data: it only constructs,
// so every error it reports is a construction-time error.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one schema file", cli.ErrUsage)
	}
	bad := 0
	for _, arg := range args {
		schema, err := getObjFile(arg)
		if err == nil {
			_, err = transform.New(schema)
		}
		if err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
