package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/contracts"
	"hostpro/infrastructure/repositories"
	"hostpro/test/helpers"
)

func TestThemeStore_InitFallsBackToSystemPreference(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()

	dark := application.NewThemeStore(prefs, "c1")
	dark.Init(ctx, true)
	assert.True(t, dark.IsDark())

	light := application.NewThemeStore(prefs, "c2")
	light.Init(ctx, false)
	assert.False(t, light.IsDark())
}

func TestThemeStore_InitPrefersStoredValue(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()
	require.NoError(t, prefs.Set(ctx, "c1", contracts.PreferenceTheme, application.ThemeLight))

	store := application.NewThemeStore(prefs, "c1")
	store.Init(ctx, true)
	assert.False(t, store.IsDark())
}

func TestThemeStore_InitIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()
	require.NoError(t, prefs.Set(ctx, "c1", contracts.PreferenceTheme, "sepia"))

	store := application.NewThemeStore(prefs, "c1")
	store.Init(ctx, true)
	assert.True(t, store.IsDark())
}

func TestThemeStore_DoubleToggleRestoresAndPersists(t *testing.T) {
	ctx := context.Background()
	prefs := repositories.NewMemoryPreferenceRepository()
	store := application.NewThemeStore(prefs, "c1")
	store.Init(ctx, false)

	assert.True(t, store.Toggle(ctx))
	stored, err := prefs.Get(ctx, "c1", contracts.PreferenceTheme)
	require.NoError(t, err)
	assert.Equal(t, application.ThemeDark, stored)
	assert.Equal(t, application.ThemeDark, store.Name())

	assert.False(t, store.Toggle(ctx))
	stored, err = prefs.Get(ctx, "c1", contracts.PreferenceTheme)
	require.NoError(t, err)
	assert.Equal(t, application.ThemeLight, stored)
	assert.False(t, store.IsDark())
}

func TestThemeStore_PersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	prefs := helpers.NewFailingPreferenceStore(errors.New("disk full"))
	store := application.NewThemeStore(prefs, "c1")
	store.Init(ctx, false)

	var notified []bool
	store.Subscribe(func(dark bool) { notified = append(notified, dark) })

	assert.True(t, store.Toggle(ctx))
	assert.True(t, store.IsDark())
	assert.Equal(t, []bool{true}, notified)
	prefs.AssertCalled(t, "Set", ctx, "c1", contracts.PreferenceTheme, application.ThemeDark)
}
