package arguments

import (
	"github.com/cockroachdb/errors"

	"github.com/tradepost/cmdargs/messages"
)

// Kind classifies a parse failure.
type Kind int

const (
	// KindMissing means the cursor ran out where a value was required.
	KindMissing Kind = iota + 1
	// KindInvalid means a token was present but syntactically unacceptable.
	KindInvalid
	// KindRejected means the value parsed but was refused by a semantic
	// check, e.g. filtered out or ambiguous.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "MissingArgument"
	case KindInvalid:
		return "InvalidArgument"
	case KindRejected:
		return "ArgumentRejected"
	default:
		return "Unknown"
	}
}

var (
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrArgumentRejected = errors.New("argument rejected")
)

// ParseError is returned by every failing Parse.
type ParseError struct {
	Kind Kind
	// Argument is the qualified name of the argument that failed.
	Argument string
	// Token is the offending token, empty for KindMissing.
	Token string
	// Reason is the human readable cause of an invalid or rejected token.
	Reason string
	// Message is the rendered user facing message.
	Message string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Unwrap().Error() + " " + e.Argument
}

// Unwrap returns the sentinel error of the kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindMissing:
		return ErrMissingArgument
	case KindInvalid:
		return ErrInvalidArgument
	default:
		return ErrArgumentRejected
	}
}

// KindOf returns the kind of the ParseError in err's chain, or zero.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// moreSpecific picks the error a FirstOf surfaces: rejected over invalid
// over missing, the earlier one on ties.
func moreSpecific(current, next error) error {
	if current == nil {
		return next
	}
	if KindOf(next) > KindOf(current) {
		return next
	}
	return current
}

func missingArgument(ctx *Context, arg string) error {
	return &ParseError{
		Kind:     KindMissing,
		Argument: arg,
		Message:  ctx.settings.Messages.Format(messages.MissingArgument, messages.Args{"argument": arg}),
	}
}

func invalidArgument(ctx *Context, arg, token, reason string) error {
	return &ParseError{
		Kind:     KindInvalid,
		Argument: arg,
		Token:    token,
		Reason:   reason,
		Message: ctx.settings.Messages.Format(messages.InvalidArgument, messages.Args{
			"argument": arg, "token": token, "reason": reason,
		}),
	}
}

func rejectedArgument(ctx *Context, arg, token, reason string) error {
	return &ParseError{
		Kind:     KindRejected,
		Argument: arg,
		Token:    token,
		Reason:   reason,
		Message: ctx.settings.Messages.Format(messages.ArgumentRejected, messages.Args{
			"argument": arg, "token": token, "reason": reason,
		}),
	}
}

func trailingArgument(ctx *Context, arg, token string) error {
	return &ParseError{
		Kind:     KindInvalid,
		Argument: arg,
		Token:    token,
		Message:  ctx.settings.Messages.Format(messages.TrailingArgument, messages.Args{"token": token}),
	}
}
