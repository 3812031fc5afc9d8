package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var isTerminalFunc = func(w io.Writer) bool { // mockable
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printer renders command results in the selected format.
// Colours are only used for text output on a terminal.
type printer struct {
	format string
	w      io.Writer
	clr    *color.Color
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
	case "":
		format = formatText
	default:
		return nil, errors.Errorf("invalid output format %q (text|json|yaml)", format)
	}

	clr := color.New()
	clr.SetOutput(w)
	if isTerminalFunc(w) {
		clr.Enable()
	} else {
		clr.Disable()
	}
	return &printer{format: format, w: w, clr: clr}, nil
}

// print encodes `v` as JSON or YAML, or calls `text` for text output.
func (p *printer) print(v interface{}, text func(w io.Writer, clr *color.Color)) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(p.w, p.clr)
		return nil
	}
}
