// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// GreetingViewModel holds everything the greeting card renders.
type GreetingViewModel struct {
	Title       string
	MessageHTML string // Already sanitized.
	Player      PlayerViewModel
	Image       ImageViewModel
	Counter     CounterViewModel
}

// PlayerViewModel describes the embedded third-party audio player frame.
type PlayerViewModel struct {
	URL     string
	Height  int
	Allow   string
	Sandbox string
}

// ImageViewModel holds the static image reference and its size hints.
type ImageViewModel struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// CounterViewModel holds the pre-rendered elapsed-time lines and the stream
// the browser subscribes to for live updates.
type CounterViewModel struct {
	Lines      []string
	StreamPath string
}
