package htmlspan

import (
	"testing"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/stretchr/testify/assert"
)

func TestNewStyleContextSeedsFromBase(t *testing.T) {
	base := graphics.SpanStyle{
		BackgroundColor: graphics.ColorWhite,
		Color:           graphics.ColorBlue,
		FontAttributes:  graphics.FontAttributesItalic,
		FontFamily:      "Serif",
		FontSize:        18,
		Decorations:     graphics.TextDecorationsUnderline,
	}

	got := NewStyleContext(base).Resolve()
	assert.Equal(t, base, got)
}

func TestResolveDefaults(t *testing.T) {
	got := StyleContext{}.Resolve()
	assert.Equal(t, DefaultBackground, got.BackgroundColor)
	assert.Equal(t, DefaultForeground, got.Color)
	assert.Equal(t, graphics.DefaultFontSize, got.FontSize)
	assert.Equal(t, graphics.FontAttributesNone, got.FontAttributes)
	assert.Equal(t, graphics.TextDecorationsNone, got.Decorations)
	assert.Empty(t, got.FontFamily)
}

func TestDeriveCarriesExplicitColorsOnly(t *testing.T) {
	tests := []struct {
		name    string
		ctx     StyleContext
		wantBg  bool
		wantFg  bool
		bgColor graphics.Color
		fgColor graphics.Color
	}{
		{
			name: "defaults are not pinned",
			ctx:  NewStyleContext(graphics.SpanStyle{BackgroundColor: DefaultBackground, Color: DefaultForeground}),
		},
		{
			name:    "explicit colors cascade",
			ctx:     StyleContext{}.WithBackground(graphics.ColorWhite).WithForeground(graphics.ColorRed),
			wantBg:  true,
			wantFg:  true,
			bgColor: graphics.ColorWhite,
			fgColor: graphics.ColorRed,
		},
		{
			name:    "only foreground",
			ctx:     StyleContext{}.WithForeground(graphics.ColorGreen),
			wantFg:  true,
			fgColor: graphics.ColorGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := tt.ctx.Derive()
			bg, hasBg := child.Background()
			fg, hasFg := child.Foreground()
			assert.Equal(t, tt.wantBg, hasBg)
			assert.Equal(t, tt.wantFg, hasFg)
			if tt.wantBg {
				assert.Equal(t, tt.bgColor, bg)
			}
			if tt.wantFg {
				assert.Equal(t, tt.fgColor, fg)
			}
		})
	}
}

func TestDeriveCarriesEverythingElse(t *testing.T) {
	tapped := false
	parent := StyleContext{}.
		WithBold(true).
		WithUnderline(true).
		WithFontFamily("Mono").
		WithFontSize(22).
		WithLink("https://x.test", func() { tapped = true })

	child := parent.Derive()
	assert.True(t, child.FontAttributes().Has(graphics.FontAttributesBold))
	assert.True(t, child.Decorations().Has(graphics.TextDecorationsUnderline))
	assert.Equal(t, "Mono", child.FontFamily())
	assert.Equal(t, 22.0, child.FontSize())

	run := child.Run("x")
	assert.Equal(t, "https://x.test", run.Link)
	if assert.NotNil(t, run.OnTap) {
		run.OnTap()
	}
	assert.True(t, tapped)
}

func TestOverridesDoNotMutateReceiver(t *testing.T) {
	parent := StyleContext{}.WithForeground(graphics.ColorBlue)

	first := parent.Derive().WithForeground(graphics.ColorRed).WithBold(true)
	second := parent.Derive()

	fg, _ := second.Foreground()
	assert.Equal(t, graphics.ColorBlue, fg, "sibling must not see the override")
	assert.False(t, second.FontAttributes().Has(graphics.FontAttributesBold))

	fg, _ = first.Foreground()
	assert.Equal(t, graphics.ColorRed, fg)

	fg, _ = parent.Foreground()
	assert.Equal(t, graphics.ColorBlue, fg)
}

func TestFlagOverrides(t *testing.T) {
	c := StyleContext{}.WithBold(true).WithItalic(true)
	assert.Equal(t, graphics.FontAttributesBold|graphics.FontAttributesItalic, c.FontAttributes())

	c = c.WithBold(false)
	assert.Equal(t, graphics.FontAttributesItalic, c.FontAttributes())

	c = c.WithUnderline(true).WithUnderline(false)
	assert.Equal(t, graphics.TextDecorationsNone, c.Decorations())
}
