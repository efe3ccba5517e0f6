package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunExecutesJob(t *testing.T) {
	s := New()
	var ran atomic.Int32
	s.Register(Job{
		Name:     "touch",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		},
	})

	if err := s.Run(context.Background(), "touch"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	deadline := time.After(2 * time.Second)
	for ran.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("job never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := s.Run(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown job name")
	}
}

func TestListReflectsOutcome(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "failing",
		Interval: time.Hour,
		Fn:       func(ctx context.Context) error { return errors.New("boom") },
	})

	items := s.List()
	if len(items) != 1 || items[0].Status != StatusIdle {
		t.Fatalf("initial list = %+v", items)
	}

	if err := s.Run(context.Background(), "failing"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	deadline := time.After(2 * time.Second)
	for {
		items = s.List()
		if items[0].Status == StatusReject {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("status = %q, want reject", items[0].Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
	if items[0].LastRunAt == nil {
		t.Error("lastRunAt not recorded")
	}
}
