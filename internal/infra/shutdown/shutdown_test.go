package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_ReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		h.OnShutdown(func(context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	if err := h.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []int{3, 2, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hook order = %v, want %v", order, want)
		}
	}
}

func TestRun_ReturnsLastError(t *testing.T) {
	h := NewHandler(time.Second)

	errFirst := errors.New("first")
	errSecond := errors.New("second")

	h.OnShutdown(func(context.Context) error { return errFirst })
	h.OnShutdown(func(context.Context) error { return errSecond })
	h.OnShutdown(func(context.Context) error { return nil })

	// Hooks run in reverse: nil, errSecond, errFirst. The last error
	// encountered wins.
	if err := h.Run(); !errors.Is(err, errFirst) {
		t.Errorf("Run = %v, want %v", err, errFirst)
	}
}

func TestRun_ClosesDone(t *testing.T) {
	h := NewHandler(time.Second)

	select {
	case <-h.Done():
		t.Fatal("Done closed before Run")
	default:
	}

	if err := h.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Error("Done not closed after Run")
	}
}

func TestRun_HooksShareDeadline(t *testing.T) {
	h := NewHandler(50 * time.Millisecond)

	var deadlineSeen bool
	h.OnShutdown(func(ctx context.Context) error {
		_, deadlineSeen = ctx.Deadline()
		return nil
	})

	if err := h.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !deadlineSeen {
		t.Error("hook context has no deadline")
	}
}
