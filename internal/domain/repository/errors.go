package repository

import "errors"

// ErrNotFound is returned by repositories when the referenced document does
// not exist. Services translate it into their own taxonomy.
var ErrNotFound = errors.New("not found")
