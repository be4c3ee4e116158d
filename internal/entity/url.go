// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL together with its
// visit log and visitor set, the User struct, and the relevant error definitions.
package entity

import (
	"errors"
	"maps"
	"slices"
	"time"
)

var (
	// ErrShortCodeExists is returned when attempting to create a URL with a short code that already exists.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")
	// ErrMustLogin is returned when an operation requires an authenticated user and there is none.
	ErrMustLogin = errors.New("must login")
	// ErrForbidden is returned when the authenticated user does not own the URL.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when a required value is missing.
	ErrInvalidInput = errors.New("invalid input")
)

// URL represents a shortened URL.
type URL struct {
	ShortCode string              // ShortCode is the generated code used to shorten the long URL.
	LongURL   string              // LongURL is the full URL that the short code resolves to.
	OwnerID   string              // OwnerID is the ID of the user who created the URL.
	Visits    []Visit             // Visits is the log of every redirect, in append order.
	Visitors  map[string]struct{} // Visitors is the set of distinct visitor IDs.
	CreatedAt time.Time           // CreatedAt is the timestamp when the URL was created.
	UpdatedAt time.Time           // UpdatedAt is the timestamp when the URL was last updated.
}

// Visit is a single redirect through a short code.
type Visit struct {
	VisitorID string
	Timestamp time.Time
}

// NewURL returns a URL with an empty visit log and visitor set.
func NewURL(shortCode, longURL, ownerID string, now time.Time) *URL {
	return &URL{
		ShortCode: shortCode,
		LongURL:   longURL,
		OwnerID:   ownerID,
		Visits:    []Visit{},
		Visitors:  map[string]struct{}{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddVisit records v in the visit log and reports whether its visitor is new.
func (u *URL) AddVisit(v Visit) bool {
	if u.Visitors == nil {
		u.Visitors = map[string]struct{}{}
	}

	_, seen := u.Visitors[v.VisitorID]
	if !seen {
		u.Visitors[v.VisitorID] = struct{}{}
	}

	u.Visits = append(u.Visits, v)

	return !seen
}

// HasVisitor reports whether visitorID has visited the URL.
func (u *URL) HasVisitor(visitorID string) bool {
	_, ok := u.Visitors[visitorID]
	return ok
}

// VisitCount returns the number of logged visits.
func (u *URL) VisitCount() int {
	return len(u.Visits)
}

// UniqueVisitors returns the size of the visitor set.
func (u *URL) UniqueVisitors() int {
	return len(u.Visitors)
}

// Clone returns a deep copy of u, so callers never alias the visit log or visitor set.
func (u *URL) Clone() *URL {
	c := *u
	c.Visits = slices.Clone(u.Visits)
	if c.Visits == nil {
		c.Visits = []Visit{}
	}
	c.Visitors = maps.Clone(u.Visitors)
	if c.Visitors == nil {
		c.Visitors = map[string]struct{}{}
	}
	return &c
}
