// Package merge combines catalog reads with local overlay state into one
// consistent view. Every function here is pure: inputs are never mutated and
// results are freshly allocated.
package merge

import (
	"slices"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
)

// Comments merges server-origin and local comments for one thread into a
// single list ordered by creation timestamp ascending. The sort is stable
// over the server-then-local concatenation, so on equal timestamps server
// entries come first. The two id namespaces never collide, so no
// de-duplication happens.
func Comments(server, local []domain.Comment) []domain.Comment {
	combined := make([]domain.Comment, 0, len(server)+len(local))
	combined = append(combined, server...)
	combined = append(combined, local...)

	slices.SortStableFunc(combined, func(a, b domain.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return combined
}

// LikeCount is the displayed like total for a feed item: the static seeded
// count plus this client's local likes. Neither source is reconciled with
// the other; the server value never changes and the local value only grows.
func LikeCount(seeded, local int) int {
	return seeded + local
}
