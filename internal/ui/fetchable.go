package ui

import "time"

// LoadState tracks the progression of data loading for a Fetchable field.
type LoadState int

const (
	LoadIdle    LoadState = iota // never fetched
	LoadLoading                  // a fetch episode is in flight
	LoadReady                    // last episode succeeded
	LoadError                    // last episode failed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadReady:
		return "ready"
	case LoadError:
		return "error"
	}
	return "unknown"
}

// Fetchable wraps a value with loading state metadata.
//
// Every fetch episode is stamped with a generation. Only a settlement for the
// current generation is applied; older ones are stale and dropped. Data keeps
// the last successful payload across later failures and reloads.
type Fetchable[T any] struct {
	Data      T
	State     LoadState
	Err       error
	FetchedAt time.Time

	gen      uint64
	hasData  bool
	detached bool
}

// Start begins an episode unless one is already in flight. ok reports whether
// the caller must issue a fetch tagged with gen.
func (f *Fetchable[T]) Start() (gen uint64, ok bool) {
	if f.detached || f.State == LoadLoading {
		return f.gen, false
	}
	return f.begin(), true
}

// Supersede begins a new episode even when one is in flight. The older
// episode's settlement becomes stale.
func (f *Fetchable[T]) Supersede() (gen uint64, ok bool) {
	if f.detached {
		return f.gen, false
	}
	return f.begin(), true
}

func (f *Fetchable[T]) begin() uint64 {
	f.gen++
	f.State = LoadLoading
	return f.gen
}

// Resolve applies data for episode gen. It returns false for stale or
// detached settlements.
func (f *Fetchable[T]) Resolve(gen uint64, data T) bool {
	if !f.current(gen) {
		return false
	}
	f.Data = data
	f.State = LoadReady
	f.Err = nil
	f.FetchedAt = time.Now()
	f.hasData = true
	return true
}

// Fail records err for episode gen. Prior data is kept.
func (f *Fetchable[T]) Fail(gen uint64, err error) bool {
	if !f.current(gen) {
		return false
	}
	f.State = LoadError
	f.Err = err
	return true
}

func (f *Fetchable[T]) current(gen uint64) bool {
	return !f.detached && f.State == LoadLoading && gen == f.gen
}

// Detach stops all further transitions.
func (f *Fetchable[T]) Detach() {
	f.detached = true
}

// Generation returns the generation of the latest episode.
func (f *Fetchable[T]) Generation() uint64 { return f.gen }

// IsReady returns true when the latest episode succeeded.
func (f *Fetchable[T]) IsReady() bool {
	return f.State == LoadReady
}

// HasData returns true once any episode has succeeded.
func (f *Fetchable[T]) HasData() bool {
	return f.hasData
}

// IsLoading returns true when a fetch is in flight.
func (f *Fetchable[T]) IsLoading() bool {
	return f.State == LoadLoading
}

// Detached reports whether Detach was called.
func (f *Fetchable[T]) Detached() bool { return f.detached }
