package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/frame/framedebug"
	"github.com/pterm/pterm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeLayout writes a layout tree to w in one of the output formats.
func writeLayout(w io.Writer, root *boxtree.LayoutBox, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(boxDTO(root), "", "  ")
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot encode layout tree")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "dot":
		if err := framedebug.ToGraphViz(root, w); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write layout graph")
		}
		return nil
	}
	s, err := pterm.DefaultTree.WithRoot(boxTreeNode(root)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

// --- Tree output -----------------------------------------------------------

func boxLabel(b *boxtree.LayoutBox) string {
	r := b.Dimensions.Content
	return fmt.Sprintf("%s %s  %v×%v @ %v,%v", b.Type, boxtree.ContainerName(b),
		r.W, r.H, r.X, r.Y)
}

func boxTreeNode(b *boxtree.LayoutBox) pterm.TreeNode {
	node := pterm.TreeNode{Text: boxLabel(b)}
	for _, ch := range b.Children {
		node.Children = append(node.Children, boxTreeNode(ch))
	}
	return node
}

func styleTreeNode(sn *styledtree.StyNode) pterm.TreeNode {
	text := sn.NodeName()
	if sn.Styles() != nil && sn.Styles().Size() > 0 {
		text += " " + sn.Styles().String()
	}
	node := pterm.TreeNode{Text: text}
	for _, ch := range sn.Children() {
		node.Children = append(node.Children, styleTreeNode(ch))
	}
	return node
}

func writeStyles(w io.Writer, root *styledtree.StyNode) error {
	s, err := pterm.DefaultTree.WithRoot(styleTreeNode(root)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

// --- Geometry table --------------------------------------------------------

func boxTable(boxes []*boxtree.LayoutBox) pterm.TableData {
	data := pterm.TableData{
		{"Box", "Type", "Content", "Padding", "Border", "Margin"},
	}
	for _, b := range boxes {
		d := b.Dimensions
		data = append(data, []string{
			boxtree.ContainerName(b),
			b.Type.String(),
			d.Content.String(),
			d.Padding.String(),
			d.Border.String(),
			d.Margin.String(),
		})
	}
	return data
}

func writeBoxTable(w io.Writer, boxes []*boxtree.LayoutBox) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(boxTable(boxes)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// --- JSON ------------------------------------------------------------------

type rectJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

type layoutBoxJSON struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Content  rectJSON        `json:"content"`
	Padding  [4]float64      `json:"padding"`
	Border   [4]float64      `json:"border"`
	Margin   [4]float64      `json:"margin"`
	Children []layoutBoxJSON `json:"children,omitempty"`
}

func boxDTO(b *boxtree.LayoutBox) layoutBoxJSON {
	d := b.Dimensions
	dto := layoutBoxJSON{
		Type: b.Type.String(),
		Name: boxtree.ContainerName(b),
		Content: rectJSON{
			X: d.Content.X.Px(),
			Y: d.Content.Y.Px(),
			W: d.Content.W.Px(),
			H: d.Content.H.Px(),
		},
		Padding: edgesPx(d.Padding),
		Border:  edgesPx(d.Border),
		Margin:  edgesPx(d.Margin),
	}
	for _, ch := range b.Children {
		dto.Children = append(dto.Children, boxDTO(ch))
	}
	return dto
}

func edgesPx(e frame.EdgeSizes) [4]float64 {
	return [4]float64{e[frame.Top].Px(), e[frame.Right].Px(), e[frame.Bottom].Px(), e[frame.Left].Px()}
}
