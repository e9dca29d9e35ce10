package external

import (
	"encoding/base32"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const sessionKeyPrefix = "session:"

// CacheSessionStore implements sessions.Store on top of a CacheProvider.
// The cookie carries only a signed session ID; values live in the backend.
type CacheSessionStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options
	cache   ports.CacheProvider
}

// NewCacheSessionStore creates a store whose cookies expire after maxAge.
// keyPairs are passed to securecookie as hash/block key pairs.
func NewCacheSessionStore(cache ports.CacheProvider, maxAge time.Duration, secure bool, keyPairs ...[]byte) *CacheSessionStore {
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			// stored values are not bound by cookie size limits
			sc.MaxLength(0)
			sc.MaxAge(int(maxAge.Seconds()))
		}
	}

	return &CacheSessionStore{
		Codecs: codecs,
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			Secure:   secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		cache: cache,
	}
}

// Get returns a session for the given name after adding it to the registry
func (s *CacheSessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for the given name without adding it to the registry.
// A missing, tampered or expired session yields a fresh one marked IsNew.
func (s *CacheSessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.Codecs...); err != nil {
		return session, nil
	}

	found, err := s.load(r, name, id, session)
	if err != nil {
		return session, err
	}
	if found {
		session.ID = id
		session.IsNew = false
	}
	return session, nil
}

// Save persists the session and writes the signed ID cookie.
// A non-positive MaxAge deletes the session and expires the cookie.
func (s *CacheSessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge <= 0 {
		if session.ID != "" {
			if err := s.cache.Delete(r.Context(), sessionKeyPrefix+session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
	}

	encodedValues, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return errors.NewUnexpectedError("failed to encode session values", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.cache.Set(r.Context(), sessionKeyPrefix+session.ID, []byte(encodedValues), ttl); err != nil {
		return err
	}

	encodedID, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return errors.NewUnexpectedError("failed to sign session id", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encodedID, session.Options))
	return nil
}

// Renew drops the stored session and clears its ID so the next Save issues a
// new one. Values are kept.
func (s *CacheSessionStore) Renew(r *http.Request, session *sessions.Session) error {
	if session.ID != "" {
		if err := s.cache.Delete(r.Context(), sessionKeyPrefix+session.ID); err != nil {
			return err
		}
	}
	session.ID = ""
	session.IsNew = true
	return nil
}

func (s *CacheSessionStore) load(r *http.Request, name, id string, session *sessions.Session) (bool, error) {
	data, err := s.cache.Get(r.Context(), sessionKeyPrefix+id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if err := securecookie.DecodeMulti(name, string(data), &session.Values, s.Codecs...); err != nil {
		return false, nil
	}
	return true, nil
}
