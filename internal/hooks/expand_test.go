package hooks

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	env := map[string]string{
		"HOOKS": "/srv/hooks",
		"EMPTY": "",
		"A_1":   "a",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "no variables", input: "/a/b", want: "/a/b"},
		{name: "bare name", input: "$HOOKS/pre-commit", want: "/srv/hooks/pre-commit"},
		{name: "braced name", input: "${HOOKS}x", want: "/srv/hooksx"},
		{name: "name stops at punctuation", input: "$A_1.d", want: "a.d"},
		{name: "empty value", input: "x$EMPTY/y", want: "x/y"},
		{name: "lone dollar", input: "a$", want: "a$"},
		{name: "dollar before non-name", input: "a$/b", want: "a$/b"},
		{name: "undefined", input: "$NOPE/x", wantErr: ErrUndefinedVariable},
		{name: "undefined braced", input: "${NOPE}", wantErr: ErrUndefinedVariable},
		{name: "unterminated brace", input: "${HOOKS/x", wantErr: ErrMalformedPath},
		{name: "empty brace", input: "${}", wantErr: ErrMalformedPath},
		{name: "invalid braced name", input: "${1X}", wantErr: ErrMalformedPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnv(tt.input, lookup)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	t.Run("tilde", func(t *testing.T) {
		got, err := expandPath("~/hooks/pre-commit")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "hooks", "pre-commit"), got)
	})

	t.Run("bare tilde", func(t *testing.T) {
		got, err := expandPath("~")
		require.NoError(t, err)
		assert.Equal(t, home, got)
	})

	t.Run("tilde user is literal", func(t *testing.T) {
		got, err := expandPath("~hooks/pre-commit")
		require.NoError(t, err)
		assert.Equal(t, "~hooks/pre-commit", got)
	})

	t.Run("tilde from variable is literal", func(t *testing.T) {
		t.Setenv("HOOKLINE_TEST_HOOKS", "~/h")
		got, err := expandPath("$HOOKLINE_TEST_HOOKS/pre-commit")
		require.NoError(t, err)
		assert.Equal(t, "~/h/pre-commit", got)
	})

	t.Run("tilde then variable", func(t *testing.T) {
		t.Setenv("HOOKLINE_TEST_HOOKS", "h")
		got, err := expandPath("~/$HOOKLINE_TEST_HOOKS/pre-commit")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "h", "pre-commit"), got)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HOOKLINE_TEST_HOOKS", "/opt/hooks")
		got, err := expandPath("$HOOKLINE_TEST_HOOKS/commit-msg")
		require.NoError(t, err)
		assert.Equal(t, "/opt/hooks/commit-msg", got)
	})

	t.Run("failure is a PathExpansionError", func(t *testing.T) {
		_, err := expandPath("$HOOKLINE_TEST_UNSET/commit-msg")
		var expErr *PathExpansionError
		require.ErrorAs(t, err, &expErr)
		assert.Equal(t, "$HOOKLINE_TEST_UNSET/commit-msg", expErr.Path)
		assert.ErrorIs(t, err, ErrUndefinedVariable)
	})
}
