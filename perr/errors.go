// Package perr collects the core's error taxonomy: sentinel
// errors checked with errors.Is, rather than ad-hoc string matching.
package perr

import "errors"

var (
	// ErrUnknownFeature: get(key, ...) with key not in any registry.
	ErrUnknownFeature = errors.New("pbp: unknown feature")

	// ErrMissingPartner: a relation get called without an "other".
	ErrMissingPartner = errors.New("pbp: relation requires other")

	// ErrIllegalNesting: a RelMatcher's other_sel itself contains
	// RelMatchers.
	ErrIllegalNesting = errors.New("pbp: selector relation matcher may not nest relation matchers")

	// ErrStaleCache: reserved for a cached selector complexity disagreeing
	// with recomputation. Selector keeps no complexity cache (Complexity is
	// recomputed on every call), so nothing in this module returns it.
	ErrStaleCache = errors.New("pbp: stale selector complexity cache")

	// ErrCacheMiss: Get was called with cacheOnly=true and nothing was
	// cached yet — an ordinary cache peek, not a bug.
	ErrCacheMiss = errors.New("pbp: no cached value for this feature")

	// ErrUnknownSupportValue: reserved for a supports level with no known
	// activity. The supports relation sets label and activity together, so
	// nothing in this module returns it.
	ErrUnknownSupportValue = errors.New("pbp: unknown supports level")

	// ErrNoObjects: no movable objects in the scene. The *_most attributes
	// do not return it: with no movable objects they report activity 1.
	ErrNoObjects = errors.New("pbp: no movable objects in scene")

	// ErrCacheOnlyAttribute: ObjectNode.GetAll was called on an attribute
	// key — get_all only makes sense for relations, so this core rejects
	// it rather than leaving it undefined.
	ErrCacheOnlyAttribute = errors.New("pbp: get_all is only valid for relations")
)
