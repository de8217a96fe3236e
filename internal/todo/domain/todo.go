package domain

import "time"

// Todo ids are unique per owner, not globally: two users may both hold id 1.
// Ownership is implicit in the storage partition and never leaves the store.
type Todo struct {
	ID        int64
	Text      string
	Done      bool
	CreatedAt time.Time
}

// Patch carries the optional fields of an update; nil means "leave as is".
type Patch struct {
	Text *string
	Done *bool
}
