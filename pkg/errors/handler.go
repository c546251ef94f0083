package errors

import (
	stderrors "errors"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time, and a KindUnknown
// error is classified from its cause with KindOf.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Kind == KindUnknown {
		err.Kind = KindOf(err.Err)
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverWithCallback is like Recover but hands the panic to callback
// instead of reporting it, so the caller can turn it into a return value.
// A nil callback reports the panic like Recover.
//
//	defer errors.RecoverWithCallback("htmlspan.ConvertString", func(p *errors.PanicError) {
//		err = p
//	})
func RecoverWithCallback(op string, callback func(*PanicError)) {
	if r := recover(); r != nil {
		p := newPanicError(op, r)
		if callback == nil {
			ReportPanic(p)
			return
		}
		callback(p)
	}
}

func newPanicError(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// KindOf classifies err by the first conversion error found in its chain.
func KindOf(err error) ErrorKind {
	var (
		syntaxErr *MarkupSyntaxError
		colorErr  *ColorParseError
		styleErr  *StyleError
		panicErr  *PanicError
	)
	switch {
	case stderrors.As(err, &syntaxErr):
		return KindMarkup
	case stderrors.As(err, &colorErr), stderrors.As(err, &styleErr):
		return KindStyle
	case stderrors.As(err, &panicErr):
		return KindPanic
	default:
		return KindUnknown
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
