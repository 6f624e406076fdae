package id

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var reID = regexp.MustCompile(`^[a-f0-9]{32}$`)

// New returns a random (v4) identifier as 32 lowercase hex characters.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Valid reports whether s has the shape produced by New.
func Valid(s string) bool { return reID.MatchString(s) }
