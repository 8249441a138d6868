// ABOUTME: Polling-based file watcher for theme and config hot-reload
// ABOUTME: Compares file mtimes each interval until the context ends; no external dependencies

package config

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is the polling period used when Watch gets a
// non-positive interval.
const DefaultWatchInterval = 2 * time.Second

// Watch polls paths every interval and calls onChange, on the calling
// goroutine, whenever a file appears, disappears or changes mtime. It
// blocks until ctx is done and returns ctx.Err().
func Watch(ctx context.Context, paths []string, interval time.Duration, onChange func()) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	mtimes := snapshot(paths)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			next := snapshot(paths)
			if changed(mtimes, next) {
				mtimes = next
				onChange()
			}
		}
	}
}

// snapshot records current mtimes; missing files are left out.
func snapshot(paths []string) map[string]time.Time {
	m := make(map[string]time.Time, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		m[path] = info.ModTime()
	}
	return m
}

func changed(prev, next map[string]time.Time) bool {
	if len(prev) != len(next) {
		return true
	}
	for path, t := range next {
		if p, ok := prev[path]; !ok || !p.Equal(t) {
			return true
		}
	}
	return false
}
