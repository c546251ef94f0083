package markup

import (
	"strings"

	"github.com/go-drift/htmllabel/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseHTML(fragment string, opts Options) (*Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, &errors.MarkupSyntaxError{Msg: err.Error()}
	}

	root := &Element{name: RootTag}
	for _, n := range nodes {
		root.children = appendHTMLNode(root.children, n, opts)
	}
	return root, nil
}

func appendHTMLNode(children []Node, n *html.Node, opts Options) []Node {
	switch n.Type {
	case html.ElementNode:
		el := &Element{name: n.Data}
		for _, a := range n.Attr {
			el.attrs = append(el.attrs, Attr{Name: a.Key, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			el.children = appendHTMLNode(el.children, c, opts)
		}
		return append(children, el)
	case html.TextNode:
		if opts.DropWhitespace && isSpace(n.Data) {
			return children
		}
		return appendText(children, n.Data)
	default:
		// Comments and doctypes carry no text.
		return children
	}
}
