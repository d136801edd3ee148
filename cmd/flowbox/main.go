/*
Command flowbox lays out HTML documents and reports the resulting boxes.

	flowbox layout page.html --css extra.css --width 1024 --format json
	flowbox style page.html
	flowbox query page.html "p.note"
	flowbox query page.html --xpath "//p[@class='note']"
	flowbox repl page.html

Configuration is read from an optional `flowbox.yaml` in the current
directory and from environment variables prefixed with FLOWBOX_, e.g.
FLOWBOX_VIEWPORT_WIDTH=640.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"os"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'flowbox.cli'
func tracer() tracing.Trace {
	return tracing.Select("flowbox.cli")
}

// traceKeys are all the trace keys of the layout engine.
var traceKeys = []string{
	"flowbox.cli", "flowbox.core", "flowbox.dom", "flowbox.frame",
	"flowbox.frame.box", "flowbox.layout", "flowbox.input",
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(errorMessage(err))
		tracer().Errorf(err.Error())
		os.Exit(int(core.Code(err)))
	}
}

// errorMessage prefers the user message of application errors. Errors
// from the command line parser are reported as they are.
func errorMessage(err error) string {
	var e *core.AppError
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing configures all tracers of the engine with a trace level
// (Debug|Info|Error).
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.root":      level,
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINVALID, "error configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
	return nil
}

func usageError(format string, v ...interface{}) error {
	return core.Error(core.EINVALID, format, v...)
}
