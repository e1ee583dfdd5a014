package assets

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/world"
)

func TestLoaderReadinessBarrier(t *testing.T) {
	release := make(chan struct{})
	l := start("gated", log.New(io.Discard), func(string) (*Pack, error) {
		<-release
		return Default()
	})

	if _, err := l.Tileset(); !errors.Is(err, world.ErrNotReady) {
		t.Fatalf("Tileset() before load = %v, expected ErrNotReady", err)
	}

	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pack, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !pack.Tiles.Has(world.Grass) {
		t.Error("loaded pack should define grass")
	}

	ts, err := l.Tileset()
	if err != nil || ts != pack.Tiles {
		t.Errorf("Tileset() after Wait = %p, %v", ts, err)
	}
}

func TestLoaderWaitCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	l := start("stuck", nil, func(string) (*Pack, error) {
		<-release
		return Default()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, expected context.Canceled", err)
	}
}

func TestLoaderReportsFailure(t *testing.T) {
	l := Load("/definitely/not/here.yaml", log.New(io.Discard))

	_, err := l.Wait(context.Background())

	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Wait = %v, expected AssetLoadError", err)
	}
	if _, err := l.Pack(); !errors.As(err, &loadErr) {
		t.Error("Pack() should keep reporting the load error")
	}
}

func TestLoaderEmbeddedDefault(t *testing.T) {
	l := Load("", nil)

	select {
	case <-l.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not finish")
	}

	if _, err := l.Tileset(); err != nil {
		t.Errorf("Tileset: %v", err)
	}
}
