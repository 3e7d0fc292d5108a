package port

// Location is a navigable history of shareable paths, like a browser's
// address bar plus its back/forward stack.
type Location interface {
	// Push records path as the new current entry and discards any
	// forward entries.
	Push(path string)

	// Back moves one entry back and returns it.
	// Returns false when there is no earlier entry.
	Back() (string, bool)

	// Forward moves one entry forward and returns it.
	Forward() (string, bool)

	// Current returns the current path, or "" when history is empty.
	Current() string
}
