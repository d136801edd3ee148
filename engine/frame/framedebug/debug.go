/*
Package framedebug writes layout trees in GraphViz DOT format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'flowbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.frame")
}

// MaxBoxes limits the number of boxes written by ToGraphViz.
const MaxBoxes = 4096

// ErrTooManyBoxes is returned by ToGraphViz for trees with more than MaxBoxes boxes.
var ErrTooManyBoxes = errors.New("layout tree too large for GraphViz output")

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a layout tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// Boxes are labeled with their type, name and content rectangle.
func ToGraphViz(root *boxtree.LayoutBox, w io.Writer) error {
	header := template.Must(template.New("layoutTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"istext":      isTextBox,
			"label":       label,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*boxtree.LayoutBox]string, 256)
	if root != nil {
		if err := boxes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func boxes(b *boxtree.LayoutBox, w io.Writer, dict map[*boxtree.LayoutBox]string,
	gparams *graphParamsType) error {
	//
	gparams.cnt++
	if gparams.cnt > MaxBoxes {
		return ErrTooManyBoxes
	}
	if err := box(b, w, dict, gparams); err != nil {
		return err
	}
	tracer().Debugf("box = %v", b)
	for _, child := range b.Children {
		if err := boxes(child, w, dict, gparams); err != nil {
			return err
		}
		if err := edge(b, child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func box(b *boxtree.LayoutBox, w io.Writer, dict map[*boxtree.LayoutBox]string,
	gparams *graphParamsType) error {
	//
	name := dict[b]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[b] = name
	}
	return gparams.BoxTmpl.Execute(w, boxParams(b, name))
}

// Helper structs
type cbox struct {
	B      *boxtree.LayoutBox
	Name   string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 cbox
}

func edge(b1, b2 *boxtree.LayoutBox, w io.Writer, dict map[*boxtree.LayoutBox]string,
	gparams *graphParamsType) error {
	//
	e := cedge{cbox{B: b1, Name: dict[b1]}, cbox{B: b2, Name: dict[b2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func boxParams(b *boxtree.LayoutBox, name string) *cbox {
	c := &cbox{B: b, Name: name, Fill: "lightblue3", Border: "black"}
	if b.Type == boxtree.AnonymousBlockBox {
		c.Fill = "grey90"
		return c
	}
	sty := b.Styling()
	if bg := colorString(sty.Colors.Background); bg != "" {
		c.Fill = bg
	}
	if bc := colorString(sty.Colors.Border[frame.Top]); bc != "" {
		c.Border = bc
	}
	return c
}

// ---------------------------------------------------------------------------

func label(b *boxtree.LayoutBox) string {
	if b == nil {
		return "\"<empty box>\""
	}
	r := b.Dimensions.Content
	var sym string
	switch b.Type {
	case boxtree.BlockBox:
		sym = frame.BlockMode.Symbol()
	case boxtree.InlineBox:
		sym = frame.InlineMode.Symbol()
	default:
		sym = "□"
	}
	return fmt.Sprintf("\"%s %s\\n%v×%v @ %v,%v\"", sym, boxtree.ContainerName(b),
		r.W, r.H, r.X, r.Y)
}

func shortText(b *boxtree.LayoutBox) string {
	txt := []rune(b.HTMLNode().Data)
	s := "\"T \\\""
	if len(txt) > 10 {
		s += string(txt[:10]) + "…\\\"\""
	} else {
		s += string(txt) + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func isTextBox(b *boxtree.LayoutBox) bool {
	h := b.HTMLNode()
	return h != nil && h.Type == html.TextNode
}

func colorString(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`
const boxTmpl = `{{ if istext .B }}
{{ .Name }}	[ label={{ shortstring .B }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .B }} shape=box style=filled fillcolor="{{ .Fill }}" color="{{ .Border }}" ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
