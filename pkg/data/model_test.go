package data

import (
	"errors"
	"testing"
)

func TestNewItemIsAvailable(t *testing.T) {
	item := NewItem("Dune", "Frank Herbert", "Science Fiction")

	if !item.IsAvailable() {
		t.Error("Expected new item to be available")
	}
	if item.Title != "Dune" {
		t.Errorf("Expected Title 'Dune', got '%s'", item.Title)
	}
}

func TestItemCheckout(t *testing.T) {
	item := NewItem("Dune", "Frank Herbert", "Science Fiction")

	if err := item.Checkout(); err != nil {
		t.Fatalf("Checkout() error = %v, want nil", err)
	}
	if item.IsAvailable() {
		t.Error("Expected item to be unavailable after checkout")
	}

	err := item.Checkout()
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Second Checkout() error = %v, want ErrNotAvailable", err)
	}
	if item.IsAvailable() {
		t.Error("Failed checkout should leave the item unavailable")
	}
}

func TestItemReturn(t *testing.T) {
	item := NewItem("Dune", "Frank Herbert", "Science Fiction")

	// Returning an item on the shelf is a no-op
	item.Return()
	if !item.IsAvailable() {
		t.Error("Expected item to stay available")
	}

	_ = item.Checkout()
	item.Return()
	if !item.IsAvailable() {
		t.Error("Expected item to be available after return")
	}

	if err := item.Checkout(); err != nil {
		t.Errorf("Checkout() after return error = %v, want nil", err)
	}
}

func TestItemString(t *testing.T) {
	item := NewItem("Frankenstein", "Mary Shelley", "Gothic")

	want := "Frankenstein by Mary Shelley (Gothic)"
	if got := item.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
