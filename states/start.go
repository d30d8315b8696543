package states

import (
	"github.com/cockroachdb/errors"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/configs"
	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/messages"
	"github.com/tradepost/cmdargs/roster"
)

const consoleLabel = "console"

// TradePost is the shell of the trading post: every connected user can be
// named by the commands it registers.
type TradePost struct {
	*framework.CmdState

	config     *configs.Config
	roster     *roster.Roster
	visibility *roster.VisibilityFilter
	ledger     *Ledger
}

// Start builds the trading post shell over r as configured by config. The
// session starts acting as the console.
func Start(config *configs.Config, r *roster.Roster) (*TradePost, error) {
	settings, err := config.Settings()
	if err != nil {
		return nil, err
	}
	visibility, err := roster.CompileVisibility(config.Visibility)
	if err != nil {
		return nil, err
	}

	tp := &TradePost{
		CmdState:   framework.NewCmdState(consoleLabel, settings),
		config:     config,
		roster:     r,
		visibility: visibility,
		ledger:     NewLedger(),
	}
	tp.SetFormat(framework.NameFormat(config.GetGlobalOutputFormat()))
	tp.setupCommands()
	return tp, nil
}

// Roster returns the connected users.
func (tp *TradePost) Roster() *roster.Roster {
	return tp.roster
}

// Ledger returns the balances.
func (tp *TradePost) Ledger() *Ledger {
	return tp.ledger
}

// ResolveCaller finds the user a request acts as. An empty name or
// "console" is the console, returned as nil.
func (tp *TradePost) ResolveCaller(name string) (*roster.User, error) {
	if name == "" || matching.Normalize(name) == consoleLabel {
		return nil, nil
	}
	if u, ok := tp.roster.LookupName(name); ok {
		return u, nil
	}
	if u, ok := tp.roster.Lookup(name); ok {
		return u, nil
	}
	return nil, errors.Wrapf(roster.ErrNotFound, "caller %q", name)
}

// actAs switches the session caller, nil being the console.
func (tp *TradePost) actAs(u *roster.User) {
	if u == nil {
		tp.SetCaller(nil)
		tp.SetLabel(consoleLabel)
		return
	}
	tp.SetCaller(u)
	tp.SetLabel(u.Name())
}

// user is the argument naming one visible user by name or by id.
func (tp *TradePost) user(name string, opts ...arguments.EntityOption[*roster.User]) *arguments.FirstOf {
	base := []arguments.EntityOption[*roster.User]{
		arguments.WithVisibility[*roster.User](tp.visibility.Visible),
	}
	base = append(base, opts...)
	byID := append([]arguments.EntityOption[*roster.User]{
		arguments.WithIDSyntax[*roster.User](arguments.UUIDSyntax),
	}, base...)

	return arguments.NewFirstOf(name,
		arguments.NewByName[*roster.User]("name", tp.roster, base...),
		arguments.NewByID[*roster.User]("id", tp.roster, byID...),
	)
}

// otherUser is a user argument refusing the caller.
func (tp *TradePost) otherUser(name string) *arguments.FirstOf {
	return tp.user(name, arguments.WithAcceptance[*roster.User](tp.notYourself))
}

func (tp *TradePost) notYourself(caller any, u *roster.User) error {
	if self, ok := caller.(*roster.User); ok && self == u {
		return errors.New(tp.Settings().Messages.Format(messages.SelfTarget, nil))
	}
	return nil
}

func callerOf(ctx *arguments.Context) *roster.User {
	u, _ := ctx.Caller().(*roster.User)
	return u
}

func callerName(ctx *arguments.Context) string {
	if u := callerOf(ctx); u != nil {
		return u.Name()
	}
	return consoleLabel
}

func callerID(ctx *arguments.Context) string {
	if u := callerOf(ctx); u != nil {
		return u.ID()
	}
	return ""
}
