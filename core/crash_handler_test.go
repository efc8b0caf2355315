package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleCrashNilIsNoop(t *testing.T) {
	HandleCrash(nil)
}

func TestGoRunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	Go(func() {
		defer wg.Done()
		ran = true
	})
	wg.Wait()
	if !ran {
		t.Error("function did not run")
	}
}

func TestGuardPassesError(t *testing.T) {
	want := errors.New("stop")
	if err := Guard(func() error { return want })(); err != want {
		t.Errorf("Guard returned %v, want %v", err, want)
	}
}

func TestSetCrashScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	SetCrashScreen(screen)
	if crashScreen.Load() == nil {
		t.Fatal("screen not registered")
	}
	SetCrashScreen(nil)
	if crashScreen.Load() != nil {
		t.Error("screen not cleared")
	}
}
