package textstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/yada/pkg/types"
)

func TestProfileMissingFile(t *testing.T) {
	p, err := LoadProfile(filepath.Join(t.TempDir(), "profile.yaml"))
	require.NoError(t, err)
	assert.Equal(t, types.NewProfile(), p)
	assert.False(t, p.Complete())
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	p := types.NewProfile()
	require.NoError(t, p.SetGender("F"))
	require.NoError(t, p.SetHeight(165))
	require.NoError(t, p.SetWeight(60.5))
	require.NoError(t, p.SetAge(30))
	require.NoError(t, p.SetActivityLevel(types.ActivityModerate))
	require.NoError(t, p.SetMethod(types.MethodMifflinStJeor))

	require.NoError(t, SaveProfile(path, p))
	assert.Contains(t, readFile(t, path), "activity_level: moderate")

	got, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"negative height", "height_cm: -1\n", types.ErrInvalidHeight},
		{"unknown gender", "gender: other\n", types.ErrInvalidGender},
		{"unknown activity", "activity_level: frantic\n", types.ErrInvalidActivityLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "profile.yaml", tt.content)
			_, err := LoadProfile(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
