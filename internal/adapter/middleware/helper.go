package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

// callerID fingerprints the Authorization header so one key scopes to one
// caller. Anonymous requests share the "anon" scope.
func callerID(authorization string) string {
	if authorization == "" {
		return "anon"
	}
	return bodyHash([]byte(authorization))[:16]
}

func buildKey(method, path, caller, idemKey string) string {
	return "idemp:agrifin:" + strings.ToLower(method) + ":" + path + ":" + caller + ":" + idemKey
}

// storable reports whether a response may be replayed. Server errors and
// auth failures are released so a retry runs the handler again.
func storable(code int) bool {
	switch {
	case code >= http.StatusInternalServerError:
		return false
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return false
	}
	return true
}

// UUIDs, 32-hex ids and other opaque client tokens.
var reKey = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

func validKey(k string) bool { return reKey.MatchString(k) }

// ---- Redis helpers ----
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
