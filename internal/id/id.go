// Package id generates local-comment ids. Catalog ids are fixed at seed time;
// the local-comment prefix keeps the two families distinct so merged comment
// lists never need de-duplication.
package id

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
)

// LocalComment creates an id for a client-authored comment:
// local-comment-<unix-ms>-<suffix>. The timestamp component keeps ids roughly
// ordered; the random suffix makes collisions across tabs implausible without
// any central coordination.
func LocalComment(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 9)
	if err != nil {
		return "", fmt.Errorf("generate comment id suffix: %w", err)
	}
	return fmt.Sprintf("%s%d-%s", domain.LocalCommentPrefix, now.UnixMilli(), suffix), nil
}
