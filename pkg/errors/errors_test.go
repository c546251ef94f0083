package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "htmlspan.Convert",
		Kind: KindStyle,
		Err:  &ColorParseError{Value: "notacolor"},
	}
	assert.Equal(t, `htmlspan.Convert [style]: invalid color "notacolor"`, err.Error())
}

func TestErrorWithURL(t *testing.T) {
	err := &Error{
		Op:   "htmlspan.openLink",
		Kind: KindLink,
		URL:  "https://x.test",
		Err:  stderrors.New("no browser"),
	}
	assert.Contains(t, err.Error(), "url=https://x.test")
}

func TestErrorUnwrap(t *testing.T) {
	cause := &MarkupSyntaxError{Line: 2, Msg: "unexpected EOF"}
	err := &Error{Op: "markup.Parse", Kind: KindMarkup, Err: cause}

	var syntaxErr *MarkupSyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, 2, syntaxErr.Line)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindMarkup, "markup"},
		{KindStyle, "style"},
		{KindLink, "link"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestMarkupSyntaxErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *MarkupSyntaxError
		want string
	}{
		{"with line", &MarkupSyntaxError{Line: 3, Msg: "element <b> closed by </i>"}, "markup syntax error on line 3: element <b> closed by </i>"},
		{"without line", &MarkupSyntaxError{Msg: "unexpected EOF"}, "markup syntax error: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestColorParseErrorString(t *testing.T) {
	err := &ColorParseError{Value: "#12"}
	assert.Equal(t, `invalid color "#12"`, err.Error())
}

func TestStyleErrorString(t *testing.T) {
	err := &StyleError{Property: "font-size", Value: "large", Msg: "no digits"}
	assert.Equal(t, `invalid font-size "large": no digits`, err.Error())
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "htmlspan.Convert"
	assert.Equal(t, "panic in htmlspan.Convert: test panic", err.Error())
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{
		onError: func(err *Error) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{
		Op:   "test.op",
		Kind: KindMarkup,
		Err:  &MarkupSyntaxError{Msg: "bad"},
	})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero(), "expected Timestamp to be set")
}

func TestReportClassifiesUnknownKind(t *testing.T) {
	var captured []*Error
	handler := &testHandler{onError: func(err *Error) { captured = append(captured, err) }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{Op: "htmlspan.Convert", Err: fmt.Errorf("convert: %w", &StyleError{Property: "font-size", Msg: "no digits"})})
	Report(&Error{Op: "htmlspan.openLink", Kind: KindLink, Err: &ColorParseError{Value: "x"}})

	require.Len(t, captured, 2)
	assert.Equal(t, KindStyle, captured[0].Kind)
	assert.Equal(t, KindLink, captured[1].Kind, "an explicit kind is kept")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"markup", &MarkupSyntaxError{Msg: "x"}, KindMarkup},
		{"color", &ColorParseError{Value: "x"}, KindStyle},
		{"style", &StyleError{Property: "font-size", Msg: "no digits"}, KindStyle},
		{"panic", &PanicError{Value: "boom"}, KindPanic},
		{"wrapped", fmt.Errorf("parse: %w", &MarkupSyntaxError{Msg: "x"}), KindMarkup},
		{"other", stderrors.New("x"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(*Error) { called = true },
		onPanic: func(*PanicError) { called = true },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	assert.False(t, called)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured, "expected panic to be recovered and captured")
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	reported := 0
	handler := &testHandler{onPanic: func(*PanicError) { reported++ }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	convert := func() (err error) {
		defer RecoverWithCallback("test.callback", func(p *PanicError) { err = p })
		panic("boom")
	}
	err := convert()

	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "boom", panicErr.Value)
	assert.Equal(t, "test.callback", panicErr.Op)
	assert.NotEmpty(t, panicErr.StackTrace)
	assert.Zero(t, reported, "callback owns the panic; nothing is reported")
}

func TestRecoverWithNilCallbackReports(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer RecoverWithCallback("test.nil", nil)
		panic("boom")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "test.nil", captured.Op)
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	require.NotEmpty(t, stack)
	assert.True(t, strings.Contains(stack, "testing") || strings.Contains(stack, "runtime"),
		"stack trace should contain testing or runtime frames, got: %s", stack)
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	require.NotNil(t, DefaultHandler)
	assert.IsType(t, &LogHandler{}, DefaultHandler)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&Error{Op: "htmlspan.Convert", Kind: KindStyle, Err: &ColorParseError{Value: "x"}})
	assert.Equal(t, "[htmllabel error] htmlspan.Convert: invalid color \"x\"\n", buf.String())

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "htmlspan.openLink", Value: "boom"})
	assert.Equal(t, "[htmllabel panic] htmlspan.openLink: boom\n", buf.String())
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}

	h.HandleError(&Error{
		Op:         "htmlspan.openLink",
		Kind:       KindLink,
		URL:        "https://x.test",
		Err:        stderrors.New("no handler"),
		StackTrace: "main.main",
	})
	out := buf.String()
	assert.Contains(t, out, "[link]")
	assert.Contains(t, out, "url=https://x.test")
	assert.Contains(t, out, "Stack trace:\nmain.main")
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
