// Package idgen generates short, URL-safe event ids backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// EventPrefix is prepended to every event id.
var EventPrefix = "evt_"

// Alphabet is the character set of the random part.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters, excluding the prefix.
var Length = 16

// NewEventID returns a fresh event id.
func NewEventID() (string, error) {
	return WithPrefix(EventPrefix)
}

func WithPrefix(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}

// Generator adapts a function to the service's id source.
type Generator func() (string, error)

func (g Generator) NewID() (string, error) {
	return g()
}
