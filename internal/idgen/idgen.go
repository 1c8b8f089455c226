// Package idgen supplies unique suffixes for entity identifiers. Keeping it
// behind a function type lets tests substitute a deterministic source.
package idgen

import "github.com/google/uuid"

type Generator func() string

var Default Generator = uuid.NewString
