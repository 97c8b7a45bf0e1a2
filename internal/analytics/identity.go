// Package analytics turns fetched CRM records into the per-owner daily
// digest. Every function here is a pure transformation over in-memory
// collections.
package analytics

import (
	"crmdigest/internal/models"
	"fmt"
)

const unknownUserLabel = "Unknown User"

// Normalize reduces an owner reference to its canonical identifier.
func Normalize(ref models.OwnerRef) (models.OwnerID, bool) {
	return ref.ID()
}

// ResolveName returns the display name of the user with the given id, or a
// fallback label carrying the id.
func ResolveName(id models.OwnerID, users []models.User) string {
	for _, u := range users {
		if u.ID.OwnerID() == id && u.Name != "" {
			return u.Name
		}
	}
	return fallbackName(id)
}

func fallbackName(id models.OwnerID) string {
	return fmt.Sprintf("%s #%s", unknownUserLabel, id)
}

// directory is a users lookup built once per aggregation.
type directory map[models.OwnerID]string

func newDirectory(users []models.User) directory {
	d := make(directory, len(users))
	for _, u := range users {
		id := u.ID.OwnerID()
		if id == "" || u.Name == "" {
			continue
		}
		if _, ok := d[id]; !ok {
			d[id] = u.Name
		}
	}
	return d
}

// name prefers the users directory, then a name seen on an embedded
// reference, then the fallback label.
func (d directory) name(id models.OwnerID, embedded string) string {
	if n, ok := d[id]; ok {
		return n
	}
	if embedded != "" {
		return embedded
	}
	return fallbackName(id)
}
