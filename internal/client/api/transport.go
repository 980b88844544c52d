package api

import (
	"net/http"

	"github.com/dmitrijs2005/studygroups/internal/common"
	"github.com/google/uuid"
)

// bearerTransport attaches the current token and a request id to every
// outgoing request. The token is read per request so a login or logout is
// picked up without rebuilding the client.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	return t.base.RoundTrip(r)
}
