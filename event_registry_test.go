package libevents

import (
	"errors"
	"sync"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	registry := New()

	if got := registry.MaxListeners(); got != DefaultMaxListeners {
		t.Errorf("Expected default max listeners %d, but got %v", DefaultMaxListeners, got)
	}
	if got := registry.Len(); got != 0 {
		t.Errorf("Expected a fresh registry to hold no events, but got %d", got)
	}
	if names := registry.EventNames(); len(names) != 0 {
		t.Errorf("Expected a fresh registry to list no names, but got %v", names)
	}
}

func TestSingleListener(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var mu sync.Mutex
	var results []int

	// Registers a single listener for the "event" event.
	err := registry.On("event", func(args ...any) {
		mu.Lock()
		results = append(results, args[0].(int))
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Expected registration to succeed, but got %v", err)
	}

	if !registry.Emit("event", 42) {
		t.Error("Expected Emit to report the listener was invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 1 || results[0] != 42 {
		t.Errorf("Expected to receive [42], but got %v", results)
	}
}

func TestMultipleListeners(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var mu sync.Mutex
	var results []int

	registry.On("event", func(args ...any) {
		mu.Lock()
		results = append(results, args[0].(int))
		mu.Unlock()
	})

	registry.On("event", func(args ...any) {
		mu.Lock()
		results = append(results, args[0].(int)*2)
		mu.Unlock()
	})

	registry.Emit("event", 10)

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 2 {
		t.Fatalf("Expected 2 callbacks, but got %d", len(results))
	}

	found10 := false
	found20 := false
	for _, r := range results {
		if r == 10 {
			found10 = true
		}
		if r == 20 {
			found20 = true
		}
	}
	if !found10 || !found20 {
		t.Errorf("Expected to receive [10, 20], but got %v", results)
	}
}

func TestNoListeners(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	// Emitting an event nobody listens to runs nothing and reports false.
	if registry.Emit("nonexistentEvent", 100) {
		t.Error("Expected Emit to report no listeners were invoked")
	}
}

func TestMultipleEvents(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var mu sync.Mutex
	var event1Result, event2Result int

	registry.On("event1", func(args ...any) {
		mu.Lock()
		event1Result = args[0].(int)
		mu.Unlock()
	})

	registry.On("event2", func(args ...any) {
		mu.Lock()
		event2Result = args[0].(int)
		mu.Unlock()
	})

	registry.Emit("event1", 1)
	registry.Emit("event2", 2)

	mu.Lock()
	defer mu.Unlock()
	if event1Result != 1 {
		t.Errorf("Expected event1 to receive 1, but got %d", event1Result)
	}
	if event2Result != 2 {
		t.Errorf("Expected event2 to receive 2, but got %d", event2Result)
	}
}

func TestEmitOrderAndArguments(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var order []string
	var fArgs, gArgs []any
	f := Listener(func(args ...any) {
		order = append(order, "f")
		fArgs = args
	})
	g := Listener(func(args ...any) {
		order = append(order, "g")
		gArgs = args
	})

	if err := registry.On("x", f); err != nil {
		t.Fatalf("Expected registration to succeed, but got %v", err)
	}
	if err := registry.On("x", g); err != nil {
		t.Fatalf("Expected registration to succeed, but got %v", err)
	}

	if !registry.Emit("x", 1, 2) {
		t.Error("Expected Emit to report listeners were invoked")
	}

	// Listeners run in registration order, each seeing every argument.
	if len(order) != 2 || order[0] != "f" || order[1] != "g" {
		t.Errorf("Expected invocation order [f g], but got %v", order)
	}
	if len(fArgs) != 2 || fArgs[0] != 1 || fArgs[1] != 2 {
		t.Errorf("Expected f to receive [1 2], but got %v", fArgs)
	}
	if len(gArgs) != 2 || gArgs[0] != 1 || gArgs[1] != 2 {
		t.Errorf("Expected g to receive [1 2], but got %v", gArgs)
	}

	if err := registry.Off("x", f); err != nil {
		t.Fatalf("Expected removal to succeed, but got %v", err)
	}
	if err := registry.Off("x", g); err != nil {
		t.Fatalf("Expected removal to succeed, but got %v", err)
	}
	if got := registry.ListenerCount("x"); got != 0 {
		t.Errorf("Expected no listeners to remain, but got %d", got)
	}
	for _, name := range registry.EventNames() {
		if name == "x" {
			t.Error("Expected the emptied event to disappear from EventNames")
		}
	}
}

func TestMultiNameRegistration(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var calls []string
	fn := Listener(func(args ...any) {
		calls = append(calls, args[0].(string))
	})

	// A whitespace-separated name set registers the listener under each name.
	if err := registry.On("created updated deleted", fn); err != nil {
		t.Fatalf("Expected registration to succeed, but got %v", err)
	}
	for _, name := range []string{"created", "updated", "deleted"} {
		if got := registry.ListenerCount(name); got != 1 {
			t.Errorf("Expected one listener on %q, but got %d", name, got)
		}
	}

	registry.Emit("created", "created")
	registry.Emit("updated", "updated")
	if len(calls) != 2 || calls[0] != "created" || calls[1] != "updated" {
		t.Errorf("Expected calls [created updated], but got %v", calls)
	}

	if err := registry.Off("created updated deleted", fn); err != nil {
		t.Fatalf("Expected removal to succeed, but got %v", err)
	}
	for _, name := range []string{"created", "updated", "deleted"} {
		if got := registry.ListenerCount(name); got != 0 {
			t.Errorf("Expected %q to be empty after removal, but got %d", name, got)
		}
	}
	if names := registry.EventNames(); len(names) != 0 {
		t.Errorf("Expected no names to survive removal, but got %v", names)
	}
}

func TestNilListenerRejected(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	if err := registry.On("x", nil); !errors.Is(err, ErrNilListener) {
		t.Errorf("Expected On(nil) to fail with ErrNilListener, but got %v", err)
	}
	if err := registry.PrependListener("x", nil); !errors.Is(err, ErrNilListener) {
		t.Errorf("Expected PrependListener(nil) to fail with ErrNilListener, but got %v", err)
	}

	// Removal validates the listener before looking at the event, so the
	// error surfaces even when nothing is registered.
	if err := registry.RemoveListener("x", nil); !errors.Is(err, ErrNilListener) {
		t.Errorf("Expected RemoveListener(nil) to fail with ErrNilListener, but got %v", err)
	}

	if got := registry.Len(); got != 0 {
		t.Errorf("Expected rejected calls to leave the registry untouched, but got %d events", got)
	}
}

func TestConcurrent(t *testing.T) {
	registry := NewWithLogger(NewNopLogger())

	var mu sync.Mutex
	var results []int
	var wg sync.WaitGroup

	// Concurrently registers 10 listeners.
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := registry.On("event", func(args ...any) {
				mu.Lock()
				results = append(results, args[0].(int)+i)
				mu.Unlock()
			})
			if err != nil {
				t.Errorf("Expected registration to succeed, but got %v", err)
			}
		}(i)
	}
	wg.Wait()

	// Concurrent emission: 10 events are emitted.
	for j := 0; j < 10; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			registry.Emit("event", j)
		}(j)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	// Expect 10 (listeners) * 10 (emissions) = 100 callbacks.
	if len(results) != 100 {
		t.Errorf("Expected 100 callbacks, but got %d", len(results))
	}
}
