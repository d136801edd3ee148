package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl <file.html>",
	Short: "Explore the layout of a document interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadFromSettings(cmd, args[0])
		if err != nil {
			return err
		}
		repl, err := readline.New("flowbox > ")
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot start interactive mode")
		}
		defer repl.Close()
		intp := &Intp{session: s, repl: repl, out: os.Stdout}
		pterm.Info.Printf("Loaded %s with %d boxes\n", s.file, s.boxes.Size())
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return nil
	},
}

// Intp is our interpreter object.
type Intp struct {
	session *session
	repl    *readline.Instance
	out     io.Writer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(errorMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute interprets a single command line. It returns true if the user
// asked to quit.
func (intp *Intp) execute(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Infof("command %q, argument %q", cmd, arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true, nil
	case "query", "xpath":
		if arg == "" {
			return false, usageError("%s needs an argument", cmd)
		}
		boxes, err := intp.session.query(arg, cmd == "xpath")
		if err != nil {
			return false, err
		}
		return false, writeBoxTable(intp.out, boxes)
	case "width":
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil || w <= 0 {
			return false, usageError("width needs a positive number, have %q", arg)
		}
		intp.session.conf.width = dimen.Dimen(w)
		if err := intp.session.relayout(); err != nil {
			return false, err
		}
		return false, writeLayout(intp.out, intp.session.boxes, "tree")
	case "dump", "layout":
		format := arg
		if format == "" {
			format = "tree"
		}
		switch format {
		case "tree", "json", "dot":
			return false, writeLayout(intp.out, intp.session.boxes, format)
		}
		return false, usageError("unknown output format %q", format)
	case "styles", "style":
		return false, writeStyles(intp.out, intp.session.styled)
	}
	help(intp.out)
	return false, nil
}

func help(w io.Writer) {
	pterm.Fprintln(w, `Commands:
	query <css-selector>    geometry of boxes for matching elements
	xpath <expression>      geometry of boxes for nodes selected by XPath
	width <px>              lay out again with a new viewport width
	dump [tree|json|dot]    print the layout tree
	styles                  print the styled tree
	quit                    leave interactive mode`)
}
