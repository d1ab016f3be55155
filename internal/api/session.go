package api

import (
	"context"
	"encoding/json"
	"net/http"

	"tableside/internal/client"
	"tableside/internal/domain"
	"tableside/internal/session"
)

type SessionAPI struct {
	c     *client.Client
	store session.Store
}

func NewSessionAPI(c *client.Client, store session.Store) *SessionAPI {
	return &SessionAPI{c: c, store: store}
}

// Login authenticates and stores the returned credential and role. A stale
// (even corrupted) stored credential never blocks this call: the client
// discards anything non-ASCII before sending.
func (a *SessionAPI) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/login",
		Body: map[string]string{
			"username": username,
			"password": password,
		},
	})
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	a.store.Set(sess.Credential, sess.Role)
	return &sess, nil
}

func (a *SessionAPI) Logout() {
	a.store.Clear()
}
