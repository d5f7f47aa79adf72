package scpi

// Control names an asynchronous notification a Context raises through its
// Interface.Control callback.
type Control uint8

const (
	// ControlSRQ is raised when STB bit 6 (MSS/SRQ) rises from 0 to 1.
	ControlSRQ Control = iota
)

// Result is the operational outcome of a common-command handler. It is
// independent of the error queue: a handler that fails has typically also
// pushed an explanatory code with ErrorPush before returning ResultErr.
type Result uint8

const (
	ResultOK Result = iota
	ResultErr
)

// IDN holds the four fields returned by *IDN?. A zero-value field is
// reported as the literal mnemonic "0", matching instruments with no
// serial number.
type IDN struct {
	Manufacturer string
	Model        string
	Serial       string
	Firmware     string
}

// Interface is the capability record a host attaches to a Context. Every
// field is optional; an absent callback behaves as a no-op. Only Control
// and Reset are invoked by this package itself — Write, Flush, and Error
// exist so a formatter/dispatcher collaborator built on top of the same
// Context can share one capability record instead of inventing its own.
type Interface struct {
	// Control is invoked with ControlSRQ and the current STB value when
	// bit 6 rises from 0 to 1.
	Control func(ctx *Context, ctrl Control, value uint8)
	// Reset is invoked by *RST.
	Reset func(ctx *Context) Result
	// Write is used by a response formatter built on this Context; the
	// status core never calls it.
	Write func(ctx *Context, data []byte) (int, error)
	// Flush is used by a response formatter built on this Context; the
	// status core never calls it.
	Flush func(ctx *Context) error
	// Error is used by a response formatter built on this Context; the
	// status core never calls it.
	Error func(ctx *Context, err error)
}

// Context aggregates everything IEEE-488.2 status reporting needs for one
// instrument: the built-in and user register groups, the two flat STB/SRE
// registers, the error queue, the *IDN? fields, and the host's callbacks.
//
// A Context is not safe for concurrent use, and it is not reentrant: see
// ErrReentrantAccess.
type Context struct {
	builtin [builtinCount]RegisterGroup
	user    []RegisterGroup

	stb uint8
	sre uint8

	errs *ErrorQueue
	idn  IDN
	face Interface

	busy bool
}

// Option configures a Context at construction time.
type Option func(*Context) error

// WithIDN sets the four *IDN? fields.
func WithIDN(idn IDN) Option {
	return func(c *Context) error {
		c.idn = idn
		return nil
	}
}

// WithInterface attaches the host's callbacks.
func WithInterface(face Interface) Option {
	return func(c *Context) error {
		c.face = face
		return nil
	}
}

// WithErrorQueueCapacity fixes the error queue's capacity. It must be
// called before the Context otherwise has errors pushed into it; applying
// it more than once replaces the queue and discards anything already
// pushed by an earlier option.
func WithErrorQueueCapacity(capacity int) Option {
	return func(c *Context) error {
		if capacity <= 0 {
			return configErrorf("error queue capacity must be positive, got %d", capacity)
		}
		c.errs = newErrorQueue(capacity)
		return nil
	}
}

// WithUserGroups appends user-defined register groups, in order. Each
// spec's Parent must name a built-in group, STB, or a user group of the
// finished Context; NewContext rejects a parent that does not exist or a
// parent chain that never reaches STB.
func WithUserGroups(specs ...GroupSpec) Option {
	return func(c *Context) error {
		for _, s := range specs {
			id := UserGroup(uint16(len(c.user)))
			c.user = append(c.user, newRegisterGroup(
				id,
				preset{ptr: s.PTRPreset, ntr: s.NTRPreset, enab: s.ENABPreset},
				parentLink{group: s.Parent, bit: s.ParentBit},
			))
		}
		return nil
	}
}

// WithStandardErrors opts the named upstream SCPI-99 error codes into the
// Context's translation table, in addition to the minimal table that is
// always present.
func WithStandardErrors(codes ...int16) Option {
	return func(c *Context) error {
		selected := make(map[int16]string, len(codes))
		for _, code := range codes {
			msg, ok := standardErrorTable[code]
			if !ok {
				return configErrorf("unknown standard error code %d", code)
			}
			selected[code] = msg
		}
		c.errs.addCodes(selected)
		return nil
	}
}

// WithAllStandardErrors opts the entire upstream SCPI-99 error table into
// the Context's translation table.
func WithAllStandardErrors() Option {
	return func(c *Context) error {
		c.errs.addCodes(standardErrorTable)
		return nil
	}
}

// NewContext builds a Context from the given options and validates the
// resulting register-group topology: every group's parent chain must
// terminate at STB within a bounded number of hops. A misconfigured parent
// graph (a cycle, or a parent that names a nonexistent group) is reported
// here, at construction, rather than surfacing as runaway propagation
// later.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		builtin: defaultBuiltinGroups(),
		errs:    newErrorQueue(defaultErrorQueueCapacity),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validateTopology(); err != nil {
		return nil, err
	}
	return c, nil
}

// group resolves a GroupID to its RegisterGroup. ok is false for STB, SRE,
// or an out-of-range id — none of those name a tree node.
func (c *Context) group(id GroupID) (*RegisterGroup, bool) {
	switch id.kind {
	case kindBuiltin:
		if int(id.idx) >= len(c.builtin) {
			return nil, false
		}
		return &c.builtin[id.idx], true
	case kindUser:
		if int(id.idx) >= len(c.user) {
			return nil, false
		}
		return &c.user[id.idx], true
	default:
		return nil, false
	}
}

// allGroups returns every built-in and user register group.
func (c *Context) allGroups() []*RegisterGroup {
	all := make([]*RegisterGroup, 0, len(c.builtin)+len(c.user))
	for i := range c.builtin {
		all = append(all, &c.builtin[i])
	}
	for i := range c.user {
		all = append(all, &c.user[i])
	}
	return all
}

func (c *Context) validateTopology() error {
	all := c.allGroups()
	limit := len(all) + 1
	for _, g := range all {
		cur := g
		for steps := 0; cur.parent.group != STB; steps++ {
			if steps > limit {
				return configErrorf("register group cycle detected reaching %s", g.id)
			}
			next, ok := c.group(cur.parent.group)
			if !ok {
				return configErrorf("register group %s has invalid parent %s", g.id, cur.parent.group)
			}
			cur = next
		}
	}
	return nil
}

// checkReentrant panics with ErrReentrantAccess if called while a control
// callback raised by this same Context is still on the stack.
func (c *Context) checkReentrant() {
	if c.busy {
		panic(ErrReentrantAccess)
	}
}

// control invokes the host's Control callback, if any, marking the Context
// busy for the duration so any call back into it from the callback is
// caught by checkReentrant.
func (c *Context) control(ctrl Control, value uint8) {
	if c.face.Control == nil {
		return
	}
	c.busy = true
	defer func() { c.busy = false }()
	c.face.Control(c, ctrl, value)
}
