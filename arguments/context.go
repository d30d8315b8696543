package arguments

// Context accumulates the values parsed in one attempt, keyed by argument
// name. It is owned by that attempt and never shared.
type Context struct {
	caller   any
	settings Settings
	values   map[string]any
	order    []string
}

// NewContext returns an empty context for caller.
func NewContext(caller any, settings Settings) *Context {
	return &Context{
		caller:   caller,
		settings: settings.withDefaults(),
		values:   make(map[string]any),
	}
}

// Caller returns the entity the command is parsed for; visibility and
// permission predicates receive it.
func (c *Context) Caller() any { return c.caller }

// Settings returns the settings of this attempt.
func (c *Context) Settings() Settings { return c.settings }

// Set stores value under name, overwriting an earlier value.
func (c *Context) Set(name string, value any) {
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name] = value
}

// Get returns the value stored under name.
func (c *Context) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Has reports whether name was parsed.
func (c *Context) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns the parsed argument names in first-write order.
func (c *Context) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of parsed arguments.
func (c *Context) Len() int { return len(c.order) }

// stage returns a copy that can be discarded if parsing fails.
func (c *Context) stage() *Context {
	staged := &Context{
		caller:   c.caller,
		settings: c.settings,
		values:   make(map[string]any, len(c.values)),
		order:    append([]string(nil), c.order...),
	}
	for k, v := range c.values {
		staged.values[k] = v
	}
	return staged
}

// merge writes every value of a staged copy back into c.
func (c *Context) merge(staged *Context) {
	for _, name := range staged.order {
		c.Set(name, staged.values[name])
	}
}

// Value returns the value stored under name as T.
func Value[T any](ctx *Context, name string) (T, bool) {
	v, ok := ctx.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
