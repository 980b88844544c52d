// Package services is the repository layer of the client: each method
// validates its request, calls exactly one backend endpoint and returns the
// typed payload or an *apperror.Error. Calls that open or describe a session
// also write the resulting fields to the credential store.
package services

import (
	"context"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

// CredentialStore is the write side of credentials.Store used by services.
type CredentialStore interface {
	SaveSession(ctx context.Context, token, nickname, email string) error
	Apply(ctx context.Context, p credentials.Patch) error
	Clear(ctx context.Context) error
}

var _ CredentialStore = (*credentials.Store)(nil)

// logFailure records err at Warn and returns it unchanged.
func logFailure(ctx context.Context, log logging.Logger, op string, err error) error {
	log.Warn(ctx, op+" failed", "kind", apperror.KindOf(err).String(), "error", err)
	return err
}

// persist runs a credential write after a successful call. The network call
// has already succeeded, so a local failure is only logged.
func persist(ctx context.Context, log logging.Logger, op string, write func() error) {
	if err := write(); err != nil {
		log.Error(ctx, "saving credentials failed", "op", op, "error", err)
	}
}
