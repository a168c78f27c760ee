package tool

import (
	"context"
	"errors"
	"testing"
)

func noopHandler(_ context.Context, _ map[string]any) string { return "ok" }

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if err := r.Register(Tool{Name: "a_tool", Handler: noopHandler}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Register(Tool{Name: "", Handler: noopHandler}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := r.Register(Tool{Name: "nil_handler"}); err == nil {
		t.Error("expected error for nil handler")
	}
	if err := r.Register(Tool{Name: "a_tool", Handler: noopHandler}); err == nil {
		t.Error("expected error for duplicate name")
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Register(Tool{Name: "greet", Handler: func(_ context.Context, args map[string]any) string {
		return "hi"
	}}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := r.Dispatch(context.Background(), "greet", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != "hi" {
		t.Errorf("Dispatch() = %q, want %q", got, "hi")
	}

	_, err = r.Dispatch(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("expected ErrUnknownTool, got %v", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(Tool{Name: name, Handler: noopHandler}); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}

	tools := r.List()
	if len(tools) != 3 {
		t.Fatalf("len = %d, want 3", len(tools))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, w := range want {
		if tools[i].Name != w {
			t.Errorf("tools[%d].Name = %q, want %q", i, tools[i].Name, w)
		}
	}
}
