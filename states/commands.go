package states

import (
	"github.com/samber/lo"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/common"
	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/matching"
	"github.com/tradepost/cmdargs/roster"
)

// MaxPayment bounds a single payment.
const MaxPayment = 1000000

func (tp *TradePost) setupCommands() {
	tp.Register(
		tp.whoCommand(),
		tp.whoisCommand(),
		tp.payCommand(),
		tp.tradeCommand(),
		tp.tellCommand(),
		tp.balanceCommand(),
		tp.joinCommand(),
		tp.leaveCommand(),
		tp.asCommand(),
		tp.formatCommand(),
		tp.versionCommand(),
		tp.exitCommand(),
	)
}

func (tp *TradePost) whoCommand() *framework.Command {
	return &framework.Command{
		Use:     "who",
		Short:   "list connected users",
		Aliases: []string{"list"},
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			visible := lo.Filter(tp.roster.Candidates(), func(u *roster.User, _ int) bool {
				return tp.visibility.Visible(ctx.Caller(), u)
			})
			return framework.NewListResult[UserList](visible), nil
		},
	}
}

func (tp *TradePost) whoisCommand() *framework.Command {
	return &framework.Command{
		Use:   "whois",
		Short: "show one user, any part of the name will do",
		Args: arguments.NewSequence("whois",
			tp.user("user", arguments.WithStrategy[*roster.User](matching.Substring)),
		),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			u, _ := arguments.Value[*roster.User](ctx, "user")
			return &UserDetail{User: u, Balance: tp.ledger.Balance(u.ID())}, nil
		},
	}
}

func (tp *TradePost) payCommand() *framework.Command {
	return &framework.Command{
		Use:   "pay",
		Short: "pay credits to another user",
		Args: arguments.NewSequence("pay",
			tp.otherUser("payee"),
			arguments.NewInteger("amount", 1, MaxPayment),
		),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			payee, _ := arguments.Value[*roster.User](ctx, "payee")
			amount, _ := arguments.Value[int64](ctx, "amount")
			if err := tp.ledger.Transfer(callerID(ctx), payee.ID(), amount); err != nil {
				return nil, err
			}
			return framework.NewTextResult("%s paid %s %d credits", callerName(ctx), payee.Name(), amount), nil
		},
	}
}

func (tp *TradePost) tradeCommand() *framework.Command {
	return &framework.Command{
		Use:   "trade",
		Short: "offer an item to another user",
		Args: arguments.NewSequence("trade",
			tp.otherUser("partner"),
			arguments.NewRemainder("item"),
		),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			partner, _ := arguments.Value[*roster.User](ctx, "partner")
			item, _ := arguments.Value[string](ctx, "item")
			return framework.NewTextResult("%s offers %s to %s", callerName(ctx), item, partner.Name()), nil
		},
	}
}

func (tp *TradePost) tellCommand() *framework.Command {
	return &framework.Command{
		Use:     "tell",
		Short:   "send a private message",
		Aliases: []string{"msg"},
		Args: arguments.NewSequence("tell",
			tp.user("recipient"),
			arguments.NewRemainder("message"),
		),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			recipient, _ := arguments.Value[*roster.User](ctx, "recipient")
			message, _ := arguments.Value[string](ctx, "message")
			return framework.NewTextResult("[%s -> %s] %s", callerName(ctx), recipient.Name(), message), nil
		},
	}
}

func (tp *TradePost) balanceCommand() *framework.Command {
	return &framework.Command{
		Use:   "balance",
		Short: "show your balance",
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			if callerOf(ctx) == nil {
				return framework.NewTextResult("the console holds the bank"), nil
			}
			return framework.NewTextResult("%d credits", tp.ledger.Balance(callerID(ctx))), nil
		},
	}
}

func (tp *TradePost) joinCommand() *framework.Command {
	return &framework.Command{
		Use:   "join",
		Short: "connect a new user",
		Args:  arguments.NewSequence("join", arguments.NewWord("name")),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			name, _ := arguments.Value[string](ctx, "name")
			u := &roster.User{Nick: name}
			if err := tp.roster.Join(u); err != nil {
				return nil, err
			}
			return framework.NewTextResult("%s joined (%s)", u.Name(), u.ID()), nil
		},
	}
}

func (tp *TradePost) leaveCommand() *framework.Command {
	return &framework.Command{
		Use:   "leave",
		Short: "disconnect a user",
		Args:  arguments.NewSequence("leave", tp.user("user")),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			u, _ := arguments.Value[*roster.User](ctx, "user")
			if _, err := tp.roster.Leave(u.ID()); err != nil {
				return nil, err
			}
			if callerOf(ctx) == u {
				tp.actAs(nil)
			}
			return framework.NewTextResult("%s left", u.Name()), nil
		},
	}
}

func (tp *TradePost) asCommand() *framework.Command {
	return &framework.Command{
		Use:   "as",
		Short: "act as another user, or the console",
		Args: arguments.NewSequence("as",
			// listed first so a miss reports the user error
			arguments.NewFirstOf("caller",
				tp.user("user"),
				arguments.NewLiteral("console", consoleLabel),
			),
		),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			u, _ := arguments.Value[*roster.User](ctx, "caller")
			tp.actAs(u)
			return framework.NewTextResult("acting as %s", tp.Label()), nil
		},
	}
}

func (tp *TradePost) formatCommand() *framework.Command {
	names := lo.Map(framework.FormatNames(), func(name string, _ int) arguments.Argument {
		return arguments.NewLiteral(name, name)
	})
	return &framework.Command{
		Use:   "format",
		Short: "set the output format of results",
		Args:  arguments.NewSequence("format", arguments.NewFirstOf("format", names...)),
		Run: func(ctx *arguments.Context) (framework.ResultSet, error) {
			name, _ := arguments.Value[string](ctx, "format")
			f, err := framework.ParseFormat(name)
			if err != nil {
				return nil, err
			}
			tp.SetFormat(f)
			return framework.NewPresetResultSet(framework.NewTextResult("output format %s", f), framework.FormatPlain), nil
		},
	}
}

func (tp *TradePost) versionCommand() *framework.Command {
	return &framework.Command{
		Use:   "version",
		Short: "print version",
		Run: func(*arguments.Context) (framework.ResultSet, error) {
			return framework.NewTextResult("TradePost Version %s", common.Version), nil
		},
	}
}

func (tp *TradePost) exitCommand() *framework.Command {
	return &framework.Command{
		Use:     "exit",
		Short:   "Closes the cli",
		Aliases: []string{"quit"},
		Run: func(*arguments.Context) (framework.ResultSet, error) {
			tp.SetNext(framework.NewExitState(tp.CmdState))
			return nil, nil
		},
	}
}
