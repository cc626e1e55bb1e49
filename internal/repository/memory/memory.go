// Package memory holds in-process repositories with the same uniqueness rules as
// the PostgreSQL ones. Service and handler tests run against them.
package memory

import (
	"sync"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type store struct {
	mu sync.RWMutex
}
