package bapps

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/arguments"
	"github.com/tradepost/cmdargs/common"
	"github.com/tradepost/cmdargs/framework"
	"github.com/tradepost/cmdargs/roster"
)

// Shell is what the web server exposes: parsing and completion on behalf of
// any caller. Implementations must allow concurrent calls.
type Shell interface {
	Parse(line string, caller any) (*framework.Command, *arguments.Context, error)
	Complete(line string, caller any) []framework.Suggestion
	ResolveCaller(name string) (*roster.User, error)
}

type WebServerApp struct {
	port  int
	shell Shell
	opt   *appOption
}

// LineRequest is the query of /parse and /complete.
type LineRequest struct {
	Line string `form:"line"`
	// As names the caller; empty is the console.
	As string `form:"as"`
}

func NewWebServerApp(port int, shell Shell, opts ...AppOption) *WebServerApp {
	return &WebServerApp{
		port:  port,
		shell: shell,
		opt:   newAppOption(opts),
	}
}

func (app *WebServerApp) Run(framework.State) {
	r := gin.Default()
	app.Route(r)

	if err := r.Run(fmt.Sprintf(":%d", app.port)); err != nil {
		app.opt.logger.Error("web server stopped", zap.Error(err))
	}
}

// Route registers the handlers on r.
func (app *WebServerApp) Route(r *gin.Engine) {
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": common.Version.String()})
	})
	r.GET("/complete", app.complete)
	r.GET("/parse", app.parse)
}

func (app *WebServerApp) bind(c *gin.Context) (*LineRequest, any, bool) {
	req := &LineRequest{}
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	u, err := app.shell.ResolveCaller(req.As)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	// a nil user must stay an untyped nil caller
	var caller any
	if u != nil {
		caller = u
	}
	return req, caller, true
}

func (app *WebServerApp) complete(c *gin.Context) {
	req, caller, ok := app.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"line":        req.Line,
		"suggestions": app.shell.Complete(req.Line, caller),
	})
}

func (app *WebServerApp) parse(c *gin.Context) {
	req, caller, ok := app.bind(c)
	if !ok {
		return
	}
	cmd, ctx, err := app.shell.Parse(req.Line, caller)
	if err != nil {
		app.parseFailed(c, err)
		return
	}
	rs := framework.NewContextResult(cmd.Use, ctx)
	c.JSON(http.StatusOK, gin.H{
		"command": rs.Command,
		"values":  rs.Entities(),
	})
}

func (app *WebServerApp) parseFailed(c *gin.Context, err error) {
	var pe *arguments.ParseError
	if !errors.As(err, &pe) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":    pe.Error(),
		"kind":     pe.Kind.String(),
		"argument": pe.Argument,
		"token":    pe.Token,
	})
}
