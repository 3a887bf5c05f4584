package screenfit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// profileDoc is the YAML shape of a Profile. Durations travel as strings
// ("150ms") because yaml.v3 has no native duration support.
type profileDoc struct {
	Name        string       `yaml:"name"`
	SettleDelay string       `yaml:"settle_delay,omitempty"`
	Breakpoints []Breakpoint `yaml:"breakpoints"`
}

func (p Profile) MarshalYAML() (interface{}, error) {
	doc := profileDoc{
		Name:        p.Name,
		Breakpoints: p.Breakpoints,
	}
	if p.SettleDelay > 0 {
		doc.SettleDelay = p.SettleDelay.String()
	}
	return doc, nil
}

func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	var doc profileDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	p.Name = doc.Name
	p.Breakpoints = doc.Breakpoints
	p.SettleDelay = DefaultSettleDelay
	if doc.SettleDelay != "" {
		d, err := time.ParseDuration(doc.SettleDelay)
		if err != nil {
			return fmt.Errorf("settle_delay: %w", err)
		}
		p.SettleDelay = d
	}
	return nil
}

// LoadProfile reads and validates a YAML profile. Failures come back as a
// *ProfileError wrapping the underlying cause.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, wrapProfileErr(path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, wrapProfileErr(path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, wrapProfileErr(path, err)
	}
	return p, nil
}

// SaveProfile writes the profile as YAML.
func SaveProfile(path string, p Profile) error {
	if err := p.Validate(); err != nil {
		return wrapProfileErr(path, err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return wrapProfileErr(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapProfileErr(path, err)
	}
	return nil
}

// reloadDebounce coalesces the event bursts editors emit when saving.
const reloadDebounce = 250 * time.Millisecond

// WatchProfile watches a profile file and invokes fn with each successfully
// reloaded profile, or with the load error when an intermediate write does
// not parse; a bad write never terminates the watcher. Delivery is
// debounced. WatchProfile blocks until ctx is done; run it on its own
// goroutine.
//
// The parent directory is watched rather than the file itself so that
// atomic rename-over saves keep working.
func WatchProfile(ctx context.Context, path string, fn func(Profile, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return wrapProfileErr(path, err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return wrapProfileErr(path, err)
	}

	base := filepath.Base(path)
	var (
		mu    sync.Mutex
		timer *time.Timer
		seq   uint64
	)
	reload := func() {
		mu.Lock()
		seq++
		current := seq
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(reloadDebounce, func() {
			mu.Lock()
			stale := current != seq
			mu.Unlock()
			if stale || ctx.Err() != nil {
				return
			}
			fn(LoadProfile(path))
		})
		mu.Unlock()
	}
	defer func() {
		mu.Lock()
		seq++
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(Profile{}, wrapProfileErr(path, werr))
		}
	}
}
