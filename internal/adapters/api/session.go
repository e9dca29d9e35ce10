package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"newsletter.app/pkg/errors"
)

const (
	// SessionName is the cookie carrying the signed session ID
	SessionName = "newsletter_session"

	userIDKey = "user_id"

	loginErrorName   = "error"
	loginErrorMaxAge = 5 * time.Minute
)

// SessionStore is a sessions.Store that can rotate the session ID
type SessionStore interface {
	sessions.Store
	Renew(r *http.Request, session *sessions.Session) error
}

// SessionManager exposes the typed session operations handlers need
type SessionManager struct {
	store SessionStore
}

// NewSessionManager wraps a session store
func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

func (m *SessionManager) session(r *http.Request) (*sessions.Session, error) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return nil, errors.NewUnexpectedError("failed to load session", err)
	}
	return session, nil
}

// UserID returns the logged in user. ok is false when nobody is logged in.
func (m *SessionManager) UserID(r *http.Request) (uuid.UUID, bool, error) {
	session, err := m.session(r)
	if err != nil {
		return uuid.Nil, false, err
	}
	raw, ok := session.Values[userIDKey].(string)
	if !ok {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Login rotates the session ID and stores the user
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, err := m.renew(r)
	if err != nil {
		return err
	}
	session.Values[userIDKey] = userID.String()
	return m.save(w, r, session)
}

// Logout destroys the session and leaves a flash on a fresh one
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request, flash string) error {
	session, err := m.renew(r)
	if err != nil {
		return err
	}
	if flash != "" {
		session.AddFlash(flash)
	}
	return m.save(w, r, session)
}

// AddFlash queues a one-time message for the next rendered page
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := m.session(r)
	if err != nil {
		return err
	}
	session.AddFlash(message)
	return m.save(w, r, session)
}

// Flashes consumes all queued messages
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	session, err := m.session(r)
	if err != nil {
		return nil, err
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages, m.save(w, r, session)
}

func (m *SessionManager) renew(r *http.Request) (*sessions.Session, error) {
	session, err := m.session(r)
	if err != nil {
		return nil, err
	}
	if err := m.store.Renew(r, session); err != nil {
		return nil, errors.NewUnexpectedError("failed to renew session", err)
	}
	for k := range session.Values {
		delete(session.Values, k)
	}
	return session, nil
}

func (m *SessionManager) save(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	if err := session.Save(r, w); err != nil {
		return errors.NewUnexpectedError("failed to save session", err)
	}
	return nil
}

// SignedMessageCodec signs short messages carried in a query parameter so
// only the server can choose what the login page displays
type SignedMessageCodec struct {
	codec *securecookie.SecureCookie
}

// NewSignedMessageCodec creates a codec keyed by secret
func NewSignedMessageCodec(secret []byte) *SignedMessageCodec {
	codec := securecookie.New(secret, nil)
	codec.MaxAge(int(loginErrorMaxAge.Seconds()))
	return &SignedMessageCodec{codec: codec}
}

// Encode signs message
func (c *SignedMessageCodec) Encode(message string) (string, error) {
	encoded, err := c.codec.Encode(loginErrorName, message)
	if err != nil {
		return "", errors.NewUnexpectedError("failed to sign message", err)
	}
	return encoded, nil
}

// Decode returns the message when the signature is valid
func (c *SignedMessageCodec) Decode(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	var message string
	if err := c.codec.Decode(loginErrorName, value, &message); err != nil {
		return "", false
	}
	return message, true
}

// loginRedirect builds /login carrying a signed error message
func (c *SignedMessageCodec) loginRedirect(message string) string {
	encoded, err := c.Encode(message)
	if err != nil {
		return "/login"
	}
	return "/login?" + url.Values{loginErrorName: {encoded}}.Encode()
}
