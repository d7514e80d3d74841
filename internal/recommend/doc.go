// Package recommend filters and ranks the episode catalog against a user's
// mood selection.
//
// Both operations are pure functions over (catalog, selection): Filter keeps
// qualifying episodes in catalog order, Recommend scores and ranks them. The
// two treat an empty selection differently on purpose — Filter passes the
// whole catalog through, Recommend returns nothing — so callers can
// distinguish "no moods chosen" from "moods chosen but nothing matched".
//
// Pick adds a uniform random choice over the filtered candidates with an
// injectable randomness source for deterministic tests.
package recommend
