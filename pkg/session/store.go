// Package session is a per-visitor key-value store. The customer cart and the
// placed-order history live here, not in the database, so everything a session
// holds disappears when the session does.
package session

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// Session keys in use.
const (
	KeyCart         = "cart"
	KeyOrders       = "orders"
	KeyPendingOrder = "pending_order"
)

// Store holds opaque JSON values under a (session id, key) pair.
// Get returns (nil, nil) when the value is absent or expired.
type Store interface {
	Get(ctx context.Context, sid, key string) ([]byte, error)
	Set(ctx context.Context, sid, key string, val []byte) error
	Delete(ctx context.Context, sid, key string) error
}

// GetJSON decodes the stored value into out. Absent or undecodable values
// leave out untouched and return false: session payloads are treated as
// untrusted and recovered from, never failed on.
func GetJSON(ctx context.Context, s Store, sid, key string, out any) (bool, error) {
	raw, err := s.Get(ctx, sid, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, sid, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return s.Set(ctx, sid, key, raw)
}

// FlexInt is an int64 that survives loosely-shaped session payloads: numbers,
// numeric strings and floats all decode, anything else becomes 0.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(v)
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int64() int64 { return int64(f) }
func (f FlexInt) Int() int     { return int(f) }
