package states

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/configs"
	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/roster"
)

const (
	annaID      = "3f1c2a44-0d5e-4e8b-9a3b-1f2e3d4c5b6a"
	annabelleID = "7c2d9e10-4b3a-4f6e-8d1c-2a3b4c5d6e7f"
	bobID       = "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	ghostID     = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

func newTestPost(t *testing.T, mutate func(*configs.Config)) (*TradePost, *bytes.Buffer) {
	t.Helper()
	r, err := roster.New(
		&roster.User{UUID: annaID, Nick: "Anna", Label: "§dAnna the Bold"},
		&roster.User{UUID: annabelleID, Nick: "Annabelle"},
		&roster.User{UUID: bobID, Nick: "Bob", Admin: true},
		&roster.User{UUID: ghostID, Nick: "Ghost", Vanished: true},
	)
	require.NoError(t, err)

	config := configs.Default()
	config.Visibility = "!candidate.vanished || caller.admin || caller.id == candidate.id"
	if mutate != nil {
		mutate(config)
	}
	tp, err := Start(config, r)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	tp.SetOutput(out)
	return tp, out
}

func run(t *testing.T, tp *TradePost, out *bytes.Buffer, line string) (string, error) {
	t.Helper()
	out.Reset()
	_, err := tp.Process(line)
	return out.String(), err
}

func TestPay(t *testing.T) {
	tp, out := newTestPost(t, nil)
	anna, _ := tp.Roster().LookupName("anna")
	tp.actAs(anna)

	got, err := run(t, tp, out, "pay anna 5")
	assert.ErrorIs(t, err, arguments.ErrArgumentRejected)
	assert.Equal(t, "you cannot choose yourself", err.Error())
	assert.Empty(t, got)

	got, err = run(t, tp, out, "pay bob 40")
	require.NoError(t, err)
	assert.Equal(t, "Anna paid Bob 40 credits\n", got)
	assert.Equal(t, StartingBalance-40, tp.Ledger().Balance(annaID))
	assert.Equal(t, StartingBalance+40, tp.Ledger().Balance(bobID))

	_, err = run(t, tp, out, "pay bob 1000")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = run(t, tp, out, "pay bob 0")
	assert.Equal(t, arguments.KindRejected, arguments.KindOf(err))

	_, err = run(t, tp, out, "pay bob lots")
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument)

	_, err = run(t, tp, out, "pay bob")
	assert.ErrorIs(t, err, arguments.ErrMissingArgument)
	assert.Equal(t, "Missing argument <pay.amount>.", err.Error())

	got, err = run(t, tp, out, "pay "+bobID+" 10")
	require.NoError(t, err, "users can be named by id")
	assert.Contains(t, got, "paid Bob 10")
}

func TestAmbiguousNames(t *testing.T) {
	tp, out := newTestPost(t, nil)

	_, err := run(t, tp, out, "tell ann hello")
	require.Equal(t, arguments.KindRejected, arguments.KindOf(err))
	assert.Equal(t, "'ann' matches 2 players: Anna the Bold ("+annaID+"), Annabelle ("+annabelleID+")", err.Error())

	got, err := run(t, tp, out, "tell anna hello there")
	require.NoError(t, err, "a perfect match beats longer names")
	assert.Equal(t, "[console -> Anna] hello there\n", got)

	_, err = run(t, tp, out, "tell zed hi")
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument)
	assert.Equal(t, "Invalid value 'zed' for <tell.recipient>: nobody matches 'zed'", err.Error())
}

func TestVisibility(t *testing.T) {
	tp, out := newTestPost(t, nil)
	anna, _ := tp.Roster().LookupName("anna")
	ghost, _ := tp.Roster().LookupName("ghost")

	tp.actAs(anna)
	_, err := run(t, tp, out, "tell ghost boo")
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument, "vanished users do not resolve")
	assert.Empty(t, tp.Suggestions("tell gh"))

	got, err := run(t, tp, out, "who")
	require.NoError(t, err)
	assert.NotContains(t, got, "Ghost")
	assert.Contains(t, got, "--- Total User(s): 3")

	tp.actAs(ghost)
	assert.Equal(t, []string{"Ghost"}, framework.Texts(tp.Suggestions("tell gh")))

	tp.actAs(nil)
	got, err = run(t, tp, out, "who")
	require.NoError(t, err)
	assert.Contains(t, got, "--- Total User(s): 4")
}

func TestWhois(t *testing.T) {
	tp, out := newTestPost(t, nil)

	got, err := run(t, tp, out, "whois belle")
	require.NoError(t, err, "substring matching")
	assert.Contains(t, got, "Name:    Annabelle")
	assert.Contains(t, got, "Balance: 100")

	got, err = run(t, tp, out, "whois bold")
	require.NoError(t, err, "display labels match too")
	assert.Contains(t, got, "Label:   Anna the Bold")
}

func TestAsAndLeave(t *testing.T) {
	tp, out := newTestPost(t, nil)

	got, err := run(t, tp, out, "as bob")
	require.NoError(t, err)
	assert.Equal(t, "acting as Bob\n", got)
	assert.Equal(t, "Bob", tp.Label())

	got, err = run(t, tp, out, "balance")
	require.NoError(t, err)
	assert.Equal(t, "100 credits\n", got)

	_, err = run(t, tp, out, "leave bob")
	require.NoError(t, err)
	assert.Equal(t, "console", tp.Label())
	assert.Nil(t, tp.Caller())

	_, err = run(t, tp, out, "as bob")
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "nobody matches 'bob'", "the user alternative reports the miss")
	assert.NotContains(t, err.Error(), "console")

	got, err = run(t, tp, out, "join Carl")
	require.NoError(t, err)
	assert.Contains(t, got, "Carl joined")
	_, err = run(t, tp, out, "join carl")
	assert.ErrorIs(t, err, roster.ErrNameTaken)

	got, err = run(t, tp, out, "AS Console")
	require.NoError(t, err)
	assert.Equal(t, "acting as console\n", got)
}

func TestCompletion(t *testing.T) {
	tp, _ := newTestPost(t, nil)

	assert.Equal(t, []string{"trade", "tell"}, framework.Texts(tp.Suggestions("t")))
	assert.Equal(t, []string{"Anna", "Annabelle"}, framework.Texts(tp.Suggestions("pay an")))
	assert.Equal(t, []string{"Anna", "Annabelle"}, framework.Texts(tp.Suggestions("PAY  An")))
	assert.Empty(t, tp.Suggestions("pay anna "))
	assert.Equal(t, []string{"console"}, framework.Texts(tp.Suggestions("as con")))
	assert.Equal(t, []string{annaID}, framework.Texts(tp.Suggestions("whois 3f1c")))
	assert.Empty(t, tp.Suggestions("tell anna t"), "message words are free text")
}

func TestStartErrors(t *testing.T) {
	r, err := roster.New()
	require.NoError(t, err)

	config := configs.Default()
	config.Visibility = "candidate.vanished &&"
	_, err = Start(config, r)
	assert.Error(t, err)

	config = configs.Default()
	config.DefaultStrategy = "fuzzy"
	_, err = Start(config, r)
	assert.Error(t, err)
}

func TestResolveCaller(t *testing.T) {
	tp, _ := newTestPost(t, nil)

	u, err := tp.ResolveCaller("")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = tp.ResolveCaller("CONSOLE")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = tp.ResolveCaller("bob")
	require.NoError(t, err)
	assert.Equal(t, bobID, u.ID())

	u, err = tp.ResolveCaller(annaID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", u.Name())

	_, err = tp.ResolveCaller("nobody")
	assert.ErrorIs(t, err, roster.ErrNotFound)
}

func TestExit(t *testing.T) {
	tp, _ := newTestPost(t, nil)
	next, err := tp.Process("quit")
	require.NoError(t, err)
	assert.True(t, next.IsEnding())
}

func TestFormat(t *testing.T) {
	tp, out := newTestPost(t, nil)

	got, err := run(t, tp, out, "format json")
	require.NoError(t, err)
	assert.Equal(t, "output format json\n", got)
	assert.Equal(t, framework.FormatJSON, tp.Format())

	got, err = run(t, tp, out, "balance")
	require.NoError(t, err)
	assert.Contains(t, got, `"text": "the console holds the bank"`)

	_, err = run(t, tp, out, "format line")
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument)
	assert.Equal(t, framework.FormatJSON, tp.Format())

	assert.Equal(t, []string{"table"}, framework.Texts(tp.Suggestions("format t")))
	assert.Equal(t, []string{"default", "plain", "json", "table"}, framework.Texts(tp.Suggestions("format ")))
}
