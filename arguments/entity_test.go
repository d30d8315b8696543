package arguments

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/cmdargs/matching"
)

func TestByNameParse(t *testing.T) {
	t.Run("perfect match promotion end to end", func(t *testing.T) {
		pool := players(&player{id: "1", name: "Anna"}, &player{id: "2", name: "Annabelle"})
		arg := NewByName("target", pool, WithStrategy[*player](matching.Prefix))

		v, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"anna"}))
		require.NoError(t, err)
		assert.Equal(t, "1", v.(*player).id)
	})

	t.Run("ambiguous is rejected with bounded report", func(t *testing.T) {
		var many []*player
		for i := 0; i < 7; i++ {
			many = append(many, &player{id: fmt.Sprint(i), name: fmt.Sprintf("Steve%d", i)})
		}
		arg := NewByName("target", players(many...))

		_, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"steve"}))
		assert.ErrorIs(t, err, ErrArgumentRejected)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "steve", pe.Token)
		assert.Contains(t, pe.Message, "'steve' matches 7 players")
		assert.Contains(t, pe.Message, "Steve4 (4)")
		assert.Contains(t, pe.Message, "...and 2 more")
	})

	t.Run("exact strategy case duplicates", func(t *testing.T) {
		pool := players(&player{id: "a", name: "Steve"}, &player{id: "b", name: "steve"})
		arg := NewByName("target", pool, WithStrategy[*player](matching.Exact))
		_, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"steve"}))
		assert.Equal(t, KindRejected, KindOf(err))
	})

	t.Run("stripped label collision", func(t *testing.T) {
		pool := players(
			&player{id: "1", name: "Bob", label: "§aBob§r"},
			&player{id: "2", name: "Rob", label: "Bob"},
		)
		arg := NewByName("target", pool, WithDisplayNames[*player](true))
		_, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"bob"}))
		require.Equal(t, KindRejected, KindOf(err))
		assert.Contains(t, err.Error(), "2 players")

		noLabels := NewByName("target", pool, WithDisplayNames[*player](false))
		v, err := noLabels.Parse(NewContext(nil, testSettings()), NewCursor([]string{"bob"}))
		require.NoError(t, err)
		assert.Equal(t, "1", v.(*player).id)
	})

	t.Run("no match is invalid", func(t *testing.T) {
		arg := NewByName("target", players(&player{id: "1", name: "Anna"}))
		_, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"zed"}))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "Invalid value 'zed' for <target>: nobody matches 'zed'", err.Error())
	})

	t.Run("missing", func(t *testing.T) {
		arg := NewByName("target", players())
		_, err := arg.Parse(NewContext(nil, testSettings()), NewCursor(nil))
		assert.ErrorIs(t, err, ErrMissingArgument)
	})

	t.Run("visibility hides candidates", func(t *testing.T) {
		pool := players(&player{id: "1", name: "Anna", banned: true}, &player{id: "2", name: "Annabelle"})
		arg := NewByName("target", pool, WithVisibility(func(caller any, p *player) bool {
			return caller == "admin" || !p.banned
		}))

		v, err := arg.Parse(NewContext("guest", testSettings()), NewCursor([]string{"anna"}))
		require.NoError(t, err)
		assert.Equal(t, "2", v.(*player).id)

		v, err = arg.Parse(NewContext("admin", testSettings()), NewCursor([]string{"anna"}))
		require.NoError(t, err)
		assert.Equal(t, "1", v.(*player).id)
	})

	t.Run("acceptance rejects resolved candidate", func(t *testing.T) {
		self := &player{id: "1", name: "Anna"}
		arg := NewByName("target", players(self), WithAcceptance(func(caller any, p *player) error {
			if caller == p {
				return errors.New("you cannot target yourself")
			}
			return nil
		}))
		_, err := arg.Parse(NewContext(self, testSettings()), NewCursor([]string{"anna"}))
		assert.ErrorIs(t, err, ErrArgumentRejected)
		assert.Equal(t, "you cannot target yourself", err.Error())
	})
}

func TestByIDParse(t *testing.T) {
	pool := players(
		&player{id: "3f1c2a44-0d5e-4e8b-9a3b-1f2e3d4c5b6a", name: "Anna"},
		&player{id: "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", name: "Bob", banned: true},
	)
	arg := NewByID("target", pool,
		WithIDSyntax[*player](UUIDSyntax),
		WithVisibility(func(_ any, p *player) bool { return !p.banned }),
	)

	v, err := arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"3F1C2A44-0D5E-4E8B-9A3B-1F2E3D4C5B6A"}))
	require.NoError(t, err)
	assert.Equal(t, "Anna", v.(*player).name)

	_, err = arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"not-a-uuid"}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "is not a valid identifier")

	_, err = arg.Parse(NewContext(nil, testSettings()), NewCursor([]string{"9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"}))
	assert.ErrorIs(t, err, ErrInvalidArgument, "hidden candidates do not resolve")

	assert.Equal(t, []string{"3f1c2a44-0d5e-4e8b-9a3b-1f2e3d4c5b6a"},
		arg.Suggest(NewContext(nil, testSettings()), NewCursor([]string{"3F"})))
}

func TestEntitySuggest(t *testing.T) {
	pool := players(
		&player{id: "1", name: "Anna"},
		&player{id: "2", name: "Annabelle", label: "§dBelle"},
		&player{id: "3", name: "Bob", banned: true},
	)

	t.Run("minimum length gate", func(t *testing.T) {
		arg := NewByName("target", pool, WithMinCompletion[*player](3))
		ctx := NewContext(nil, testSettings())
		assert.Empty(t, arg.Suggest(ctx, NewCursor([]string{"a"})))
		assert.Empty(t, arg.Suggest(ctx, NewCursor([]string{"an"})))
		assert.Equal(t, []string{"Anna", "Annabelle"}, arg.Suggest(ctx, NewCursor([]string{"ann"})))
	})

	t.Run("settings minimum used by default", func(t *testing.T) {
		arg := NewByName("target", pool)
		settings := testSettings()
		settings.MinCompletionLength = 2
		assert.Empty(t, arg.Suggest(NewContext(nil, settings), NewCursor([]string{"a"})))
	})

	t.Run("exactly one remaining token", func(t *testing.T) {
		arg := NewByName("target", pool)
		ctx := NewContext(nil, testSettings())
		assert.Empty(t, arg.Suggest(ctx, NewCursor(nil)))
		assert.Empty(t, arg.Suggest(ctx, NewCursor([]string{"an", "b"})))
	})

	t.Run("labels and visibility", func(t *testing.T) {
		arg := NewByName("target", pool, WithVisibility(func(_ any, p *player) bool { return !p.banned }))
		ctx := NewContext(nil, testSettings())
		assert.Equal(t, []string{"Belle"}, arg.Suggest(ctx, NewCursor([]string{"be"})))
		assert.Empty(t, arg.Suggest(ctx, NewCursor([]string{"bo"})))
	})

	t.Run("parsing a suggestion round trips", func(t *testing.T) {
		pool := players(
			&player{id: "1", name: "Anna"},
			&player{id: "2", name: "Annabelle", label: "§dBelle"},
			&player{id: "3", name: "Bob"},
			&player{id: "4", name: "Rob", label: "§eBob Smith"},
		)
		for _, s := range []matching.Strategy{matching.Exact, matching.Prefix} {
			arg := NewByName("target", pool, WithStrategy[*player](s))
			for _, prefix := range []string{"a", "an", "anna", "b", "be", "bob"} {
				ctx := NewContext(nil, testSettings())
				suggestions := arg.Suggest(ctx, NewCursor([]string{prefix}))
				require.NotEmpty(t, suggestions, "prefix %s", prefix)
				for _, suggestion := range suggestions {
					parsed, err := Parse(arg, Tokenize(suggestion), nil, testSettings())
					require.NoError(t, err, "strategy %s suggestion %s", s.Name(), suggestion)
					p, ok := Value[*player](parsed, "target")
					require.True(t, ok)
					assert.True(t, p.name == suggestion || strings.HasSuffix(p.label, suggestion))
					assert.True(t, strings.HasPrefix(matching.Normalize(p.name), prefix) ||
						strings.HasPrefix(matching.Normalize(matching.StripMarkup(p.label)), prefix))
				}
			}
		}

		got := NewByName("target", pool).Suggest(NewContext(nil, testSettings()), NewCursor([]string{"bob"}))
		assert.Equal(t, []string{"Bob", "Rob"}, got, "a label with a blank completes as the name")
	})
}
