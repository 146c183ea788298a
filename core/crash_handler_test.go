package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestGoRecoversAndResets(t *testing.T) {
	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)

	resetCalled := false
	exitCode := -1

	crashOut = &buf
	exitFn = func(code int) {
		exitCode = code
		wg.Done()
	}
	SetResetHook(func() { resetCalled = true })
	defer func() {
		SetResetHook(nil)
	}()

	Go(func() {
		panic("boom")
	})
	wg.Wait()

	if !resetCalled {
		t.Error("Expected reset hook to run before crash report")
	}
	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected panic value in report, got %q", buf.String())
	}
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	exitFn = func(int) { called = true }
	HandleCrash(nil)
	if called {
		t.Error("Expected nil recover value to be ignored")
	}
}
