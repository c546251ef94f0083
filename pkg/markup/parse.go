package markup

import (
	"encoding/xml"
	stderrors "errors"
	"io"
	"strings"

	"github.com/go-drift/htmllabel/pkg/errors"
	"golang.org/x/net/html/charset"
)

// RootTag is the name of the synthetic element that wraps every fragment.
const RootTag = "html"

// Options controls parsing.
type Options struct {
	// Lenient parses with HTML5 rules (void <br>, implied end tags) instead
	// of XML rules. Lenient parsing does not fail on tag structure.
	Lenient bool
	// DropWhitespace discards text nodes that consist only of whitespace,
	// typically the indentation between block elements.
	DropWhitespace bool
}

// Parse parses fragment in strict mode. The fragment may hold several
// top-level nodes or bare text; it is wrapped in a synthetic <html> element
// which is returned as the root.
func Parse(fragment string) (*Element, error) {
	return ParseWithOptions(fragment, Options{})
}

// ParseWithOptions parses fragment with the given options.
func ParseWithOptions(fragment string, opts Options) (*Element, error) {
	if opts.Lenient {
		return parseHTML(fragment, opts)
	}
	return parseXML(fragment, opts)
}

const cdataPrefix = "<![CDATA["

func parseXML(fragment string, opts Options) (*Element, error) {
	src := "<" + RootTag + ">" + fragment + "</" + RootTag + ">"
	decoder := xml.NewDecoder(strings.NewReader(src))
	decoder.Strict = true
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)
	for {
		start := int(decoder.InputOffset())
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, syntaxError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{name: t.Name.Local}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &errors.MarkupSyntaxError{Line: line(decoder), Msg: "unexpected element <" + t.Name.Local + "> after root"}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			// CDATA sections are not text content and are dropped, like
			// comments. The decoder reports them as plain character data.
			if strings.HasPrefix(src[start:], cdataPrefix) {
				continue
			}
			content := string(t)
			if len(stack) == 0 {
				if isSpace(content) {
					continue
				}
				return nil, &errors.MarkupSyntaxError{Line: line(decoder), Msg: "unexpected text after root"}
			}
			if opts.DropWhitespace && isSpace(content) {
				continue
			}
			parent := stack[len(stack)-1]
			parent.children = appendText(parent.children, content)
		}
	}
	if root == nil || len(stack) != 0 {
		return nil, &errors.MarkupSyntaxError{Msg: "unexpected EOF"}
	}
	return root, nil
}

// appendText merges adjacent character data (text split around comments,
// instructions or CDATA sections) into one node.
func appendText(children []Node, content string) []Node {
	if n := len(children); n > 0 {
		if prev, ok := children[n-1].(*Text); ok {
			children[n-1] = &Text{content: prev.content + content}
			return children
		}
	}
	return append(children, &Text{content: content})
}

func syntaxError(err error) error {
	var xmlErr *xml.SyntaxError
	if stderrors.As(err, &xmlErr) {
		return &errors.MarkupSyntaxError{Line: xmlErr.Line, Msg: xmlErr.Msg}
	}
	return &errors.MarkupSyntaxError{Msg: err.Error()}
}

func line(d *xml.Decoder) int {
	l, _ := d.InputPos()
	return l
}

func isSpace(s string) bool {
	return strings.Trim(s, " \t\r\n") == ""
}
