package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsonexceller/exceller/ir"
	"github.com/jsonexceller/exceller/parse"
)

func getObjFile(path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d)
}
