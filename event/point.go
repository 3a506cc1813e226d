// Package event defines the typed site-event and circle-event records the construction
// driver (C6) schedules and processes, plus the two queues that order them: a sorted
// site-event vector and a lazily-draining circle-event min-heap ordered by lower x (C3).
package event

// Point is the minimal integral coordinate pair an event record stores per site
// endpoint. It is a separate type from the root package's Point so this package stays
// free of a dependency on the root package, which depends on event rather than the
// reverse.
type Point struct {
	X, Y int64
}
