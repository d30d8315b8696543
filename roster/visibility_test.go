package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility(t *testing.T) {
	anna := &User{UUID: "u-1", Nick: "Anna"}
	ghost := &User{UUID: "u-2", Nick: "Ghost", Vanished: true}
	admin := &User{UUID: "u-3", Nick: "Root", Admin: true}

	f, err := CompileVisibility("!candidate.vanished || caller.admin || caller.id == candidate.id")
	require.NoError(t, err)

	cases := []struct {
		name      string
		caller    any
		candidate *User
		expected  bool
	}{
		{"plain user visible", anna, admin, true},
		{"vanished hidden", anna, ghost, false},
		{"vanished sees self", ghost, ghost, true},
		{"admin sees vanished", admin, ghost, true},
		{"console sees vanished", nil, ghost, true},
		{"unknown caller is console", "console", ghost, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, f.Visible(c.caller, c.candidate))
		})
	}
}

func TestVisibilityCompile(t *testing.T) {
	f, err := CompileVisibility("")
	require.NoError(t, err)
	assert.True(t, f.Visible(nil, &User{Vanished: true}))

	notBool, err := CompileVisibility("candidate.name")
	if err == nil {
		assert.False(t, notBool.Visible(nil, &User{Nick: "Anna"}), "non boolean results hide the candidate")
	}

	_, err = CompileVisibility("candidate.vanished &&")
	assert.Error(t, err)
}
