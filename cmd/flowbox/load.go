package main

import (
	"bytes"
	"context"
	"os"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/frame/layout"
	"github.com/npillmayer/flowbox/input/css"
	"github.com/npillmayer/flowbox/input/html"
	"golang.org/x/sync/errgroup"
)

// session holds the trees produced for one input document.
type session struct {
	file   string
	doc    *html.Document
	sheet  *style.Stylesheet
	styled *styledtree.StyNode
	boxes  *boxtree.LayoutBox
	conf   settings
}

// load reads an HTML file and its stylesheets and runs the complete
// pipeline. Files are read concurrently.
func load(ctx context.Context, file string, conf settings) (*session, error) {
	var htmlText []byte
	cssTexts := make([][]byte, len(conf.css))
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		htmlText, err = readInput(file)
		return
	})
	for i, name := range conf.css {
		i, name := i, name
		g.Go(func() (err error) {
			cssTexts[i], err = readInput(name)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(htmlText))
	if err != nil {
		return nil, err
	}
	s := &session{file: file, doc: doc, conf: conf}
	if s.sheet, err = assembleStylesheet(doc, cssTexts, conf.useragent); err != nil {
		return nil, err
	}
	if err = s.relayout(); err != nil {
		return nil, err
	}
	return s, nil
}

func readInput(name string) ([]byte, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.WrapError(err, core.EMISSING, "input file %q not found", name)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot read input file %q", name)
	}
	tracer().Debugf("read %d bytes from %s", len(b), name)
	return b, nil
}

// assembleStylesheet concatenates the user-agent sheet, external author
// sheets and the document's <style> contents, in this order.
func assembleStylesheet(doc *html.Document, cssTexts [][]byte, useragent bool) (*style.Stylesheet, error) {
	sheet := style.NewStylesheet()
	if useragent {
		sheet.Append(style.UserAgentStylesheet())
	}
	for _, text := range cssTexts {
		ss, err := css.Parse(string(text))
		if err != nil {
			return nil, err
		}
		sheet.Append(ss)
	}
	if text := doc.StyleText(); text != "" {
		ss, err := css.Parse(text)
		if err != nil {
			return nil, err
		}
		sheet.Append(ss)
	}
	tracer().Infof("stylesheet has %d rules", sheet.Size())
	return sheet, nil
}

// relayout restyles the document and lays it out for the current viewport
// width.
func (s *session) relayout() error {
	root := s.doc.DocumentElement()
	if root == nil {
		return core.Error(core.EINVALID, "document %q has no root element", s.file)
	}
	s.styled = styledtree.BuildStyleTree(root, s.sheet, styledtree.WithInlineStyles(css.ParseDeclarations))
	boxes, err := layout.LayoutTree(s.styled, layout.InitialContainingBlock(s.conf.width))
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot lay out document %q", s.file)
	}
	s.boxes = boxes
	return nil
}
