package workflows

import (
	"context"
	"strings"
	"testing"

	"github.com/PolarWolf314/passvault/internal/configs"
	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/passgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_Defaults(t *testing.T) {
	settings := testSettings(t)

	res, err := GeneratePassword(context.Background(), GenerateOptions{Settings: settings})
	require.NoError(t, err)
	assert.Len(t, res.Password, configs.DefaultPasswordLength)
	assert.False(t, res.Saved, "unchanged defaults need not be written")
}

func TestGeneratePassword_RemembersSettings(t *testing.T) {
	settings := testSettings(t)
	ctx := context.Background()

	res, err := GeneratePassword(ctx, GenerateOptions{
		Settings:  settings,
		Length:    intPtr(20),
		Special:   boolPtr(false),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Len(t, res.Password, 20)
	assert.Empty(t, strings.Trim(res.Password, passgen.Digits))

	// The next run without flags reuses the remembered settings.
	res, err = GeneratePassword(ctx, GenerateOptions{Settings: settings})
	require.NoError(t, err)
	assert.Len(t, res.Password, 20)
	assert.Empty(t, strings.Trim(res.Password, passgen.Digits))

	cfg, err := configs.LoadConfig(settings)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Generator.Length)
	assert.True(t, cfg.Generator.IncludeDigits)
	assert.False(t, cfg.Generator.IncludeSpecial)
}

func TestGeneratePassword_NoSave(t *testing.T) {
	settings := testSettings(t)

	_, err := GeneratePassword(context.Background(), GenerateOptions{Settings: settings, Length: intPtr(40), NoSave: true})
	require.NoError(t, err)

	cfg, err := configs.LoadConfig(settings)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultPasswordLength, cfg.Generator.Length)
}

func TestGeneratePassword_InvalidSettingsAreNotSaved(t *testing.T) {
	settings := testSettings(t)

	_, err := GeneratePassword(context.Background(), GenerateOptions{
		Settings:  settings,
		Special:   boolPtr(false),
		Digits:    boolPtr(false),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
	})
	assert.ErrorIs(t, err, kerrors.ErrNoCharacterClass)

	cfg, err := configs.LoadConfig(settings)
	require.NoError(t, err)
	assert.True(t, cfg.Generator.IncludeLowercase)
}
