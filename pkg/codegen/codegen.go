// Package codegen generates random alphanumeric codes used as short codes,
// visitor IDs and user IDs. Generators are safe for concurrent use.
package codegen

import (
	"math/rand/v2"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	KindClass  = "class"
	KindNanoID = "nanoid"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generator generates random codes of the requested length.
// A non-positive length yields an empty string.
type Generator interface {
	Generate(length int) string
}

// Func adapts an ordinary function to a Generator.
type Func func(length int) string

func (f Func) Generate(length int) string {
	return f(length)
}

// charClass is an inclusive code point range.
type charClass struct {
	lo, hi byte
}

var classes = [...]charClass{
	{'0', '9'},
	{'A', 'Z'},
	{'a', 'z'},
}

// Generate returns a code of exactly length characters. Each character picks one
// of the digit, uppercase and lowercase classes with equal probability and then a
// character uniformly within that class.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		c := classes[rand.IntN(len(classes))]
		b[i] = c.lo + byte(rand.IntN(int(c.hi-c.lo)+1))
	}

	return string(b)
}

type classGenerator struct{}

// NewClass returns the class-weighted Generator.
func NewClass() Generator {
	return classGenerator{}
}

func (classGenerator) Generate(length int) string {
	return Generate(length)
}

type nanoIDGenerator struct{}

// NewNanoID returns a Generator drawing uniformly from [0-9A-Za-z] with go-nanoid.
func NewNanoID() Generator {
	return nanoIDGenerator{}
}

func (nanoIDGenerator) Generate(length int) string {
	if length <= 0 {
		return ""
	}

	code, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return ""
	}

	return code
}

// New returns the Generator for kind, falling back to the class-weighted one.
func New(kind string) Generator {
	switch kind {
	case KindNanoID:
		return NewNanoID()
	default:
		return NewClass()
	}
}
