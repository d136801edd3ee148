package style

var blockElements = []string{
	"html", "body", "address", "article", "aside", "blockquote", "dd", "div",
	"dl", "dt", "fieldset", "figure", "footer", "form", "h1", "h2", "h3",
	"h4", "h5", "h6", "header", "hr", "li", "main", "nav", "ol", "p", "pre",
	"section", "table", "ul",
}

var hiddenElements = []string{
	"head", "link", "meta", "script", "style", "template", "title",
}

// UserAgentStylesheet returns the default stylesheet of the engine.
// Its rules carry UserAgentOrigin and therefore lose against any author rule.
func UserAgentStylesheet() *Stylesheet {
	block := &Rule{Origin: UserAgentOrigin, Declarations: []Declaration{{Name: "display", Value: Keyword("block")}}}
	for _, tag := range blockElements {
		block.Selectors = append(block.Selectors, SimpleSelector{Tag: tag})
	}
	none := &Rule{Origin: UserAgentOrigin, Declarations: []Declaration{{Name: "display", Value: Keyword("none")}}}
	for _, tag := range hiddenElements {
		none.Selectors = append(none.Selectors, SimpleSelector{Tag: tag})
	}
	return NewStylesheet(block, none)
}
