package assets

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Loader reads a tileset on a background goroutine. Callers must pass
// through Wait (or see a nil error from Pack) before using the result.
type Loader struct {
	path string
	done chan struct{}

	mu   sync.RWMutex
	pack *Pack
	err  error
}

// Load starts loading the tileset at path (empty for the embedded default).
func Load(path string, logger *log.Logger) *Loader {
	return start(path, logger, LoadFile)
}

func start(path string, logger *log.Logger, load func(string) (*Pack, error)) *Loader {
	l := &Loader{
		path: path,
		done: make(chan struct{}),
	}

	go func() {
		defer close(l.done)

		pack, err := load(path)
		if err != nil && logger != nil {
			logger.Error("tileset load failed", "path", path, "err", err)
		} else if logger != nil {
			logger.Debug("tileset loaded", "path", pack.Path)
		}

		l.mu.Lock()
		l.pack, l.err = pack, err
		l.mu.Unlock()
	}()

	return l
}

// Done is closed once loading has finished, successfully or not.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Pack returns the loaded tileset, or world.ErrNotReady while loading.
func (l *Loader) Pack() (*Pack, error) {
	select {
	case <-l.done:
	default:
		return nil, world.ErrNotReady
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pack, l.err
}

// Tileset returns the tile prototypes, or world.ErrNotReady while loading.
func (l *Loader) Tileset() (*world.Tileset, error) {
	p, err := l.Pack()
	if err != nil {
		return nil, err
	}
	return p.Tiles, nil
}

// Wait blocks until loading finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Pack, error) {
	select {
	case <-l.done:
		return l.Pack()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
