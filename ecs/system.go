package ecs

// System represents a behavior that operates on entities with specific components.
// It reads through queries built from ctx and changes membership through proxy.
type System interface {
	Update(proxy *Proxy, ctx *Context) error
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(proxy *Proxy, ctx *Context) error

// Update calls f(proxy, ctx).
func (f SystemFunc) Update(proxy *Proxy, ctx *Context) error {
	return f(proxy, ctx)
}
