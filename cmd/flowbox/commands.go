package main

import (
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/dom/styledtree/xpathadapter"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/frame/layout"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <file.html>",
	Short: "Lay out a document and print the box tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadFromSettings(cmd, args[0])
		if err != nil {
			return err
		}
		return writeLayout(cmd.OutOrStdout(), s.boxes, s.conf.format)
	},
}

var styleCmd = &cobra.Command{
	Use:   "style <file.html>",
	Short: "Print the styled tree with the specified values of each node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadFromSettings(cmd, args[0])
		if err != nil {
			return err
		}
		return writeStyles(cmd.OutOrStdout(), s.styled)
	},
}

var xpathQuery bool

var queryCmd = &cobra.Command{
	Use:   "query <file.html> <selector>",
	Short: "Print the geometry of the boxes for elements matching a selector",
	Long: `query selects elements with a CSS selector, or with an XPath expression
if --xpath is set, and prints the used dimensions of their boxes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadFromSettings(cmd, args[0])
		if err != nil {
			return err
		}
		boxes, err := s.query(args[1], xpathQuery)
		if err != nil {
			return err
		}
		return writeBoxTable(cmd.OutOrStdout(), boxes)
	},
}

func init() {
	queryCmd.Flags().BoolVarP(&xpathQuery, "xpath", "x", false, "interpret the selector as an XPath expression")
}

func loadFromSettings(cmd *cobra.Command, file string) (*session, error) {
	conf, err := currentSettings()
	if err != nil {
		return nil, err
	}
	return load(cmd.Context(), file, conf)
}

// query returns the boxes of all elements matching a CSS selector or an
// XPath expression.
func (s *session) query(selector string, isXPath bool) ([]*boxtree.LayoutBox, error) {
	if !isXPath {
		boxes, err := layout.Query(s.boxes, selector)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
		}
		return boxes, nil
	}
	nodes, err := xpathadapter.Select(s.styled, selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", selector)
	}
	idx := layout.IndexBoxes(s.boxes)
	var boxes []*boxtree.LayoutBox
	for _, sn := range nodes {
		if box, ok := idx.Get(sn.HTMLNode()); ok {
			boxes = append(boxes, box)
		}
	}
	return boxes, nil
}
