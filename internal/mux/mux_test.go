package mux

import (
	"net/http/httptest"
	"testing"
)

func TestMux_authRequired(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	// no credentials at all
	assertGet(t, ts, "/player", nil, 401)
	assertGet(t, ts, "/room/main/ws", nil, 401)
	assertPost(t, ts, "/admin/player/some-id", nil, nil, 401)
}
