// Package model holds the types shared by the entity packages.
package model

import (
	"time"
)

// Model carries the columns every entity table has.
type Model struct {
	ID        int64
	CreatedAt time.Time
}
