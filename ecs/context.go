package ecs

// Context is the read surface handed to a running system. Queries built from it
// are released automatically when the system returns.
type Context struct {
	DeltaTime float64

	storage *Storage
	queries []releaser
}

// NewContext creates a context over the given storage.
func NewContext(s *Storage, dt float64) *Context {
	return &Context{
		DeltaTime: dt,
		storage:   s,
	}
}

// Storage returns the storage the context reads from.
func (c *Context) Storage() *Storage {
	return c.storage
}

// Release releases every query built from the context.
func (c *Context) Release() {
	for _, q := range c.queries {
		q.Release()
	}
	clear(c.queries)
	c.queries = c.queries[:0]
}

func (c *Context) backing() *Storage {
	return c.storage
}

func (c *Context) track(q releaser) {
	c.queries = append(c.queries, q)
}
