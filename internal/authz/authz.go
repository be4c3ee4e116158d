// Package authz decides whether a user may act on a shortened URL.
package authz

import "github.com/vadimbarashkov/tinyapp/internal/entity"

// Action is an operation a user attempts on a URL.
type Action uint8

const (
	Create Action = iota
	List
	Read
	Update
	Delete
)

func (a Action) String() string {
	switch a {
	case Create:
		return "create"
	case List:
		return "list"
	case Read:
		return "read"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Authorize returns nil when userID may perform action on url, and otherwise one of
// entity.ErrMustLogin, entity.ErrURLNotFound or entity.ErrForbidden, checked in that order.
// An empty userID means no active session; a nil url means the short code is unknown.
func Authorize(action Action, url *entity.URL, userID string) error {
	if userID == "" {
		return entity.ErrMustLogin
	}

	switch action {
	case Create, List:
		return nil
	}

	if url == nil {
		return entity.ErrURLNotFound
	}
	if url.OwnerID != userID {
		return entity.ErrForbidden
	}

	return nil
}
