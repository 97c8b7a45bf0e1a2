package models

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// OwnerID is the canonical, type-consistent owner identifier used as the
// aggregation key.
type OwnerID string

type ownerKind uint8

const (
	ownerAbsent ownerKind = iota
	ownerRaw
	ownerEmbedded
)

// OwnerRef is a user reference in one of the shapes the CRM emits: a bare id
// (activities, notes) or an embedded object with id and name (deals).
type OwnerRef struct {
	kind ownerKind
	id   OwnerID
	name string
}

// RawOwner builds a bare-id reference. Unusable ids yield an absent ref.
func RawOwner(id any) OwnerRef {
	cid, ok := canonicalOwnerID(id)
	if !ok {
		return OwnerRef{}
	}
	return OwnerRef{kind: ownerRaw, id: cid}
}

// EmbeddedOwner builds a structured reference.
func EmbeddedOwner(id any, name string) OwnerRef {
	cid, ok := canonicalOwnerID(id)
	if !ok {
		return OwnerRef{}
	}
	return OwnerRef{kind: ownerEmbedded, id: cid, name: strings.TrimSpace(name)}
}

func (r OwnerRef) IsAbsent() bool   { return r.kind == ownerAbsent }
func (r OwnerRef) IsRaw() bool      { return r.kind == ownerRaw }
func (r OwnerRef) IsEmbedded() bool { return r.kind == ownerEmbedded }

// ID returns the canonical identifier carried by the reference.
func (r OwnerRef) ID() (OwnerID, bool) {
	if r.kind == ownerAbsent {
		return "", false
	}
	return r.id, true
}

// Name is the embedded display name; empty for bare ids.
func (r OwnerRef) Name() string {
	return r.name
}

func (r OwnerRef) String() string {
	switch r.kind {
	case ownerRaw:
		return string(r.id)
	case ownerEmbedded:
		return fmt.Sprintf("%s (%s)", r.name, r.id)
	}
	return "<none>"
}

func canonicalOwnerID(v any) (OwnerID, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return "", false
	case OwnerID:
		s = string(t)
	case OwnerRef:
		return t.ID()
	case ID:
		s = t.OwnerID().String()
	default:
		str, err := cast.ToStringE(v)
		if err != nil {
			return "", false
		}
		s = str
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return "", false
	}
	return OwnerID(s), true
}

func (id OwnerID) String() string {
	return string(id)
}

func (r *OwnerRef) UnmarshalJSON(data []byte) error {
	*r = OwnerRef{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}

	if data[0] == '{' {
		var obj struct {
			ID    any    `json:"id"`
			Value any    `json:"value"`
			Name  string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		id := obj.ID
		if id == nil {
			id = obj.Value
		}
		*r = EmbeddedOwner(id, obj.Name)
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if _, isMap := raw.(map[string]any); isMap {
		return nil
	}
	*r = RawOwner(raw)
	return nil
}

func (r OwnerRef) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case ownerRaw:
		return json.Marshal(r.id)
	case ownerEmbedded:
		return json.Marshal(struct {
			ID   OwnerID `json:"id"`
			Name string  `json:"name"`
		}{ID: r.id, Name: r.name})
	}
	return nullLiteral, nil
}
