package htmlspan

import (
	"strings"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/markup"
)

// tag enumerates the elements with special handling. Everything else is a
// transparent container.
type tag int

const (
	tagOther tag = iota
	tagParagraph
	tagAnchor
	tagBold
	tagItalic
	tagUnderline
	tagBreak
)

func tagOf(el *markup.Element) tag {
	switch el.Tag() {
	case "p":
		return tagParagraph
	case "a":
		return tagAnchor
	case "b":
		return tagBold
	case "i":
		return tagItalic
	case "u":
		return tagUnderline
	case "br":
		return tagBreak
	default:
		return tagOther
	}
}

// newline is appended to the last run for <p> and <br>.
const newline = "\n"

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// Build walks root depth-first and returns the resolved runs. root itself
// is not styled: its children start from base.
func Build(root *markup.Element, base StyleContext, opts Options) ([]graphics.TextRun, error) {
	b := &builder{opts: opts}
	if err := b.walk(root, base); err != nil {
		return nil, err
	}
	return b.runs, nil
}

type builder struct {
	opts Options
	runs []graphics.TextRun
}

func (b *builder) walk(el *markup.Element, ctx StyleContext) error {
	for i := 0; i < el.Len(); i++ {
		switch n := el.Child(i).(type) {
		case *markup.Text:
			b.text(n, ctx)
		case *markup.Element:
			if err := b.element(n, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) text(n *markup.Text, ctx StyleContext) {
	text := n.Content()
	if b.opts.CollapseNewlines {
		text = newlineStripper.Replace(text)
	}
	b.runs = append(b.runs, ctx.Run(text))
}

func (b *builder) element(el *markup.Element, ctx StyleContext) error {
	var err error
	switch tagOf(el) {
	case tagParagraph:
		if ctx, err = b.inline(el, ctx.Derive()); err != nil {
			return err
		}
		if err := b.walk(el, ctx); err != nil {
			return err
		}
		b.appendToLast(newline)
		return nil
	case tagAnchor:
		if ctx, err = b.inline(el, ctx.Derive()); err != nil {
			return err
		}
		if href, ok := activeHref(el); ok {
			ctx = ctx.WithUnderline(true).WithLink(href, linkHandler(b.opts.opener(), href))
		}
	case tagBold:
		// Bold is forced before the inline style, so font-weight:normal wins.
		if ctx, err = b.inline(el, ctx.Derive().WithBold(true)); err != nil {
			return err
		}
	case tagItalic:
		// Italic is forced after the inline style and cannot be turned off
		// from the style attribute. Known asymmetry with <b>, preserved.
		if ctx, err = b.inline(el, ctx.Derive()); err != nil {
			return err
		}
		ctx = ctx.WithItalic(true)
	case tagUnderline:
		if ctx, err = b.inline(el, ctx.Derive()); err != nil {
			return err
		}
		ctx = ctx.WithUnderline(true)
	case tagBreak:
		b.appendToLast(newline)
		return nil
	default:
		if ctx, err = b.inline(el, ctx.Derive()); err != nil {
			return err
		}
	}
	return b.walk(el, ctx)
}

// inline applies the element's style attribute when inline styles are on.
func (b *builder) inline(el *markup.Element, ctx StyleContext) (StyleContext, error) {
	if !b.opts.ApplyInlineStyles {
		return ctx, nil
	}
	style, ok := el.Attr("style")
	if !ok || style == "" {
		return ctx, nil
	}
	return ctx.ApplyInline(style)
}

// appendToLast adds s to the text of the most recently emitted run, which
// may belong to a nested element. Without any run it does nothing.
func (b *builder) appendToLast(s string) {
	if len(b.runs) == 0 {
		return
	}
	b.runs[len(b.runs)-1].Text += s
}

// activeHref returns the href of an anchor that should be activatable.
func activeHref(el *markup.Element) (string, bool) {
	href, ok := el.Attr("href")
	if !ok || href == "" || href == "#" {
		return "", false
	}
	return href, true
}
