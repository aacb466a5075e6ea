package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/contracts"
	"hostpro/domain/navigation"
	"hostpro/infrastructure/repositories"
	"hostpro/test/helpers"
)

func TestSessionStore_LoginLogoutScenario(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()
	session := application.NewSessionStore(prefs, "c1")

	session.Init(ctx)
	assert.Equal(t, application.Anonymous, session.State())

	decision := application.Guard(session.IsAuthenticated(), navigation.Dashboard)
	assert.True(t, decision.Redirect)
	assert.Equal(t, navigation.Login, decision.View)

	session.Login(ctx, "tok123")
	assert.Equal(t, application.Authenticated, session.State())
	token, err := prefs.Get(ctx, "c1", contracts.PreferenceAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	decision = application.Guard(session.IsAuthenticated(), navigation.Dashboard)
	assert.False(t, decision.Redirect)
	assert.Equal(t, navigation.Dashboard, decision.View)

	session.Logout(ctx)
	assert.Equal(t, application.Anonymous, session.State())
	_, err = prefs.Get(ctx, "c1", contracts.PreferenceAuthToken)
	assert.ErrorIs(t, err, contracts.ErrPreferenceNotFound)
}

func TestSessionStore_InitReadsPersistedToken(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()
	require.NoError(t, prefs.Set(ctx, "c1", contracts.PreferenceAuthToken, "abc"))

	session := application.NewSessionStore(prefs, "c1")
	session.Init(ctx)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "authenticated", session.State().String())
}

func TestSessionStore_EmptyTokenIgnored(t *testing.T) {
	ctx := context.Background()
	session := application.NewSessionStore(repositories.NewMemoryPreferenceRepository(), "c1")
	session.Init(ctx)

	session.Login(ctx, "")
	assert.False(t, session.IsAuthenticated())
}

func TestSessionStore_PersistFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	session := application.NewSessionStore(helpers.NewFailingPreferenceStore(errors.New("read-only")), "c1")
	session.Init(ctx)

	var states []application.SessionState
	session.Subscribe(func(s application.SessionState) { states = append(states, s) })

	session.Login(ctx, "tok")
	assert.True(t, session.IsAuthenticated())
	session.Logout(ctx)
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, []application.SessionState{application.Authenticated, application.Anonymous}, states)
}
