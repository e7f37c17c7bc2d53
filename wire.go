package xlautomaten

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DatabaseObject is the identity and audit triple every persisted
// entity carries. The server assigns all three fields; none of them is
// ever writable.
type DatabaseObject struct {
	ID        int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// apiDatabaseObject is the wire counterpart of DatabaseObject. It is
// embedded into every full wire response shape.
type apiDatabaseObject struct {
	ID        *int    `json:"id" validate:"required"`
	CreatedAt *string `json:"created_at" validate:"required"`
	UpdatedAt *string `json:"updated_at" validate:"required"`
}

func (w apiDatabaseObject) toDomain() (DatabaseObject, error) {
	created, err := parseAPIDatePtr(w.CreatedAt)
	if err != nil {
		return DatabaseObject{}, fmt.Errorf("created_at: %w", err)
	}
	updated, err := parseAPIDatePtr(w.UpdatedAt)
	if err != nil {
		return DatabaseObject{}, fmt.Errorf("updated_at: %w", err)
	}
	return DatabaseObject{ID: deref(w.ID), CreatedAt: created, UpdatedAt: updated}, nil
}

// looseBool decodes the API's 0/1 booleans. One legacy field (article
// archived) is sometimes the literal true, so JSON booleans are
// accepted as well.
type looseBool int

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*b = 1
		return nil
	case "false":
		*b = 0
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid wire boolean %s", data)
	}
	*b = looseBool(n)
	return nil
}

func (b looseBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(b))
}

func (b looseBool) Bool() bool { return b != 0 }

// wireInt decodes fields the API sends as either a number or a numeric
// string. Unparseable values collapse to zero, matching the upstream
// coercion behavior for created_by and user_id.
type wireInt int

func (n *wireInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = wireInt(f)
	return nil
}

func (n wireInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

// deref returns the pointed-to value or the zero value for nil.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// valueOr returns the pointed-to value or def for nil. Used to apply
// documented wire defaults when the server sends null or omits a field.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ptr returns a pointer to v. Handy for literals in patch structs.
func ptr[T any](v T) *T { return &v }

// clonePtr copies an optional wire value into a fresh pointer so domain
// objects never alias wire struct memory.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// boolToWire encodes a domain boolean as the API's 0/1 literal.
func boolToWire(b bool) int {
	if b {
		return 1
	}
	return 0
}

// boolFromWire decodes a nullable 0/1 field, applying def when the
// value is null or absent.
func boolFromWire(p *looseBool, def bool) bool {
	if p == nil {
		return def
	}
	return p.Bool()
}

// optionalBool maps a nullable 0/1 field to an optional domain boolean.
// nil in, nil out.
func optionalBool(p *looseBool) *bool {
	if p == nil {
		return nil
	}
	v := p.Bool()
	return &v
}

// optionalStr maps a null, absent, or empty wire string to an absent
// domain field. The API uses empty strings and nulls interchangeably
// for "no value".
func optionalStr(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return clonePtr(p)
}

// toDomainList converts a slice of wire responses, reporting the first
// failure as a schema error for the endpoint.
func toDomainList[W, D any](endpoint string, dtos []W, conv func(W) (D, error)) ([]D, error) {
	out := make([]D, len(dtos))
	for i, dto := range dtos {
		d, err := conv(dto)
		if err != nil {
			return nil, &SchemaError{Endpoint: endpoint, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		out[i] = d
	}
	return out, nil
}

// strOrNull maps an empty string to an explicit JSON null in request
// bodies, letting callers clear a field by sending its zero value.
func strOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
