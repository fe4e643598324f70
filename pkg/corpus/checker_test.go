package corpus

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hazyhaar/voicenorm/pkg/voicenorm"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCheckAll_DefaultsPass(t *testing.T) {
	s := tempStore(t)
	if err := s.Seed(Defaults()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	c := NewChecker(s, voicenorm.New(nil, voicenorm.Options{}), quietLogger(), time.Hour)
	rep, err := c.CheckAll(context.Background())
	if err != nil {
		t.Fatalf("CheckAll: %v", err)
	}
	if rep.Failed != 0 {
		failures, _ := s.Failures()
		for _, f := range failures {
			t.Errorf("%q: expected %q, got %q", f.Input, f.Expected, *f.LastOutput)
		}
	}
	if rep.Total != len(Defaults()) || rep.Passed != rep.Total {
		t.Fatalf("unexpected report %+v", rep)
	}
}

type upper struct{}

func (upper) Normalize(s string) string { return strings.ToUpper(s) }

func TestCheckAll_RecordsRegressions(t *testing.T) {
	s := tempStore(t)
	passID, _ := s.Put("abc", "ABC", "")
	failID, _ := s.Put("def", "def", "")

	rep, err := NewChecker(s, upper{}, quietLogger(), time.Hour).CheckAll(context.Background())
	if err != nil {
		t.Fatalf("CheckAll: %v", err)
	}
	if rep != (Report{Total: 2, Passed: 1, Failed: 1}) {
		t.Fatalf("unexpected report %+v", rep)
	}

	p, _ := s.Get(passID)
	if p.LastPass == nil || !*p.LastPass {
		t.Errorf("abc should pass: %+v", p)
	}
	p, _ = s.Get(failID)
	if p.LastPass == nil || *p.LastPass || *p.LastOutput != "DEF" {
		t.Errorf("def should fail with output DEF: %+v", p)
	}
}

func TestCheckAll_Cancelled(t *testing.T) {
	s := tempStore(t)
	s.Put("abc", "ABC", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewChecker(s, upper{}, quietLogger(), time.Hour).CheckAll(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	s := tempStore(t)
	id, _ := s.Put("abc", "ABC", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewChecker(s, upper{}, quietLogger(), time.Hour).Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		p, err := s.Get(id)
		if err == nil && p.LastCheck != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial check never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
