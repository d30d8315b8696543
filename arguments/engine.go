package arguments

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/log"
)

// Parse parses one full command line against root. The returned context
// holds every parsed value; a Sequence root stores its children, any other
// root stores its value under its own name. Tokens left after root are an
// InvalidArgument failure. The context is never returned partially filled.
func Parse(root Argument, tokens []string, caller any, settings Settings) (*Context, error) {
	ctx := NewContext(caller, settings)
	cur := NewCursor(tokens)

	v, err := root.Parse(ctx, cur)
	if err == nil {
		if token, ok := cur.Peek(); ok {
			err = trailingArgument(ctx, root.Name(), token)
		}
	}
	if err != nil {
		if ctx.settings.TraceParse {
			log.Debug("parse failed",
				zap.String("root", root.Name()),
				zap.Strings("tokens", tokens),
				zap.Stringer("kind", KindOf(err)),
				zap.Error(err))
		}
		return nil, err
	}

	if _, ok := root.(*Sequence); !ok {
		ctx.Set(root.Name(), v)
	}
	return ctx, nil
}

// Complete returns the suggestions for the last of tokens. It never fails:
// any fault inside the grammar degrades to an empty list.
func Complete(root Argument, tokens []string, caller any, settings Settings) (suggestions []string) {
	ctx := NewContext(caller, settings)

	defer func() {
		if r := recover(); r != nil {
			log.Warn("completion fault recovered",
				zap.String("root", root.Name()),
				zap.Strings("tokens", tokens),
				zap.String("panic", fmt.Sprint(r)))
			suggestions = []string{}
		}
	}()

	suggestions = capSuggestions(root.Suggest(ctx, NewCursor(tokens)), ctx.settings.SuggestionCap)
	if ctx.settings.TraceCompletion {
		log.Debug("completion",
			zap.String("root", root.Name()),
			zap.Strings("tokens", tokens),
			zap.Strings("suggestions", suggestions))
	}
	return suggestions
}
