package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	finalizerMu sync.Mutex
	finalizer   func()

	// Swapped in tests
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetFinalizer registers the terminal restore to run before a crash report is printed
// The screen's Fini is the usual argument; nil clears it
func SetFinalizer(fn func()) {
	finalizerMu.Lock()
	finalizer = fn
	finalizerMu.Unlock()
}

// takeFinalizer returns the registered finalizer and clears it so it runs at most once
func takeFinalizer() func() {
	finalizerMu.Lock()
	defer finalizerMu.Unlock()
	fn := finalizer
	finalizer = nil
	return fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing
	if fn := takeFinalizer(); fn != nil {
		fn()
	}

	// \r\n in case the terminal is still raw
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard wraps an errgroup-style function with the same panic recovery as Go
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
