package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

func TestCatalogHolderLoadsOnce(t *testing.T) {
	h := NewCatalogHolder()
	if _, ready, _ := h.Snapshot(); ready {
		t.Fatal("holder should not be ready before Start")
	}

	calls := 0
	release := make(chan struct{})
	load := func(ctx context.Context) ([]catalog.Item, error) {
		calls++
		<-release
		return scenario(), nil
	}
	h.Start(context.Background(), load)
	h.Start(context.Background(), load)
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	items, err := h.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if len(items) != 3 || calls != 1 {
		t.Errorf("items %d, calls %d", len(items), calls)
	}
}

func TestCatalogHolderFailure(t *testing.T) {
	h := NewCatalogHolder()
	h.Set([]catalog.Item{{Title: "partial"}}, errors.New("HTTP error! Status: 404"))

	items, ready, err := h.Snapshot()
	if !ready || err == nil || items != nil {
		t.Fatalf("unexpected snapshot: %v %v %v", items, ready, err)
	}

	var last View
	c := NewController(nil, ThemeLight, func(v View) { last = v })
	if !h.Apply(c) {
		t.Fatal("Apply should report a resolved holder")
	}
	if last.List.Summary != "Error loading data" {
		t.Errorf("summary = %q", last.List.Summary)
	}
}

func TestCatalogHolderWaitCancelled(t *testing.T) {
	h := NewCatalogHolder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	c := NewController(nil, ThemeLight, nil)
	if h.Apply(c) {
		t.Error("Apply should be a no-op while loading")
	}
}
