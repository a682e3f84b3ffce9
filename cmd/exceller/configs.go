package main

import (
	"github.com/scott-cotton/cli"

	"github.com/jsonexceller/exceller/encode"
)

type MainConfig struct {
	Indent int `cli:"name=indent desc='output indent width, 0 for compact'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeIndent(cfg.Indent)}
}

type RunConfig struct {
	*MainConfig
	Schema string `cli:"name=schema desc='schema document file'"`

	Run *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Schema string `cli:"name=schema desc='schema document file'"`
	Want   string `cli:"name=want desc='expected result file'"`

	Diff *cli.Command
}
