package domain

// IDGenerator supplies opaque identifiers for drafts and collection entries.
// Identifiers are used as URL path segments by the HTTP layer, so they must
// be URL-safe. Injected so tests can supply deterministic ids.
type IDGenerator interface {
	NewID() string
}
