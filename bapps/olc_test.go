package bapps

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/cmdargs/arguments"
)

func TestParseScript(t *testing.T) {
	cmds := parseScript("as bob, #pay anna 5,,who ")
	assert.Equal(t, []olcCmd{
		{cmd: "as bob"},
		{cmd: "pay anna 5", muted: true},
		{cmd: "who"},
	}, cmds)
	assert.Empty(t, parseScript(""))
}

func TestOlcRun(t *testing.T) {
	tp := newTestShell(t)
	out := &bytes.Buffer{}

	app := &olcApp{script: "#as bob,balance,pay anna 5,whois bob", opt: newAppOption(nil), out: out}
	app.Run(tp)
	assert.True(t, strings.HasPrefix(out.String(), "100 credits\nBob paid Anna 5 credits\n"), out.String())
	assert.Contains(t, out.String(), "Balance: 95")

	out.Reset()
	app = &olcApp{script: "pay zed 5,who", opt: newAppOption(nil), out: out}
	err := app.run(tp)
	require.Error(t, err)
	assert.ErrorIs(t, err, arguments.ErrInvalidArgument)
	assert.Empty(t, out.String(), "later commands do not run")

	app = &olcApp{script: "exit,who", opt: newAppOption(nil), out: out}
	assert.NoError(t, app.run(tp))
	assert.Empty(t, out.String())
}
