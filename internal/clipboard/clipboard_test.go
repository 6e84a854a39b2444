package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Copy(t *testing.T) {
	t.Run("Copied", func(t *testing.T) {
		var got string
		s := &System{
			writeAll: func(text string) error {
				got = text
				return nil
			},
		}

		copied, err := s.Copy("https://bit.ly/abc123")
		require.NoError(t, err)
		assert.True(t, copied)
		assert.Equal(t, "https://bit.ly/abc123", got)
	})

	t.Run("No clipboard tool", func(t *testing.T) {
		calls := 0
		s := &System{
			unsupported: true,
			writeAll: func(string) error {
				calls++
				return nil
			},
		}

		copied, err := s.Copy("https://bit.ly/abc123")
		require.NoError(t, err)
		assert.False(t, copied)
		assert.Equal(t, 0, calls)
	})

	t.Run("Tool fails once without retry", func(t *testing.T) {
		calls := 0
		s := &System{
			writeAll: func(string) error {
				calls++
				return errors.New("exit status 1")
			},
		}

		copied, err := s.Copy("https://bit.ly/abc123")
		assert.Error(t, err)
		assert.False(t, copied)
		assert.Equal(t, 1, calls)
	})
}

func TestNone_Copy(t *testing.T) {
	copied, err := None{}.Copy("https://bit.ly/abc123")
	require.NoError(t, err)
	assert.False(t, copied)
}
