package scpi

// ParamSource is the argument-decoding half of the parser collaborator this
// package consumes. A real implementation wraps the SCPI lexer's
// ParamInt32; it is passed in by the dispatcher rather than stored on
// Context because decoding is per-command, not per-instrument.
type ParamSource interface {
	// ParamInt32 decodes the next argument as a signed 32-bit integer. ok
	// is false if mandatory is true and no argument was present, or if the
	// argument did not parse; the implementation is expected to have
	// pushed an explanatory error code in that case, since the Core*
	// handlers return ResultErr without pushing one themselves.
	ParamInt32(mandatory bool) (value int32, ok bool)
}

// ResultSink is the response-encoding half of the parser collaborator this
// package consumes, wrapping ResultInt32 and ResultMnemonic.
type ResultSink interface {
	ResultInt32(value int32)
	ResultMnemonic(value string)
}

// CoreCls implements *CLS: clears the error queue and every register
// group's EVENT sub-register, and forces STB to 0. PTR, NTR, and ENAB are
// left untouched — *CLS is not a factory reset, it only clears latched
// state.
func (c *Context) CoreCls() Result {
	c.ErrorClear()
	c.stb = 0
	for _, g := range c.allGroups() {
		g.data.event = 0
	}
	return ResultOK
}

// CoreEse implements *ESE <n>: writes the Standard Event Status enable
// register.
func (c *Context) CoreEse(p ParamSource) Result {
	v, ok := p.ParamInt32(true)
	if !ok {
		return ResultErr
	}
	c.RegSet(ESR, SubEnab, uint16(v))
	return ResultOK
}

// CoreEseQ implements *ESE?: reports the Standard Event Status enable
// register.
func (c *Context) CoreEseQ(r ResultSink) Result {
	r.ResultInt32(int32(c.RegGet(ESR, SubEnab)))
	return ResultOK
}

// CoreEsrQ implements *ESR?: reports the Standard Event Status event
// register, then clears it — RegGet already clears EVENT on read, so no
// second clear is needed here.
func (c *Context) CoreEsrQ(r ResultSink) Result {
	r.ResultInt32(int32(c.RegGet(ESR, SubEvent)))
	return ResultOK
}

// CoreIdnQ implements *IDN?: reports Manufacturer, Model, Serial, and
// Firmware in that order, as comma-separated mnemonics. A field left blank
// is reported as the literal mnemonic "0".
func (c *Context) CoreIdnQ(r ResultSink) Result {
	fields := [4]string{c.idn.Manufacturer, c.idn.Model, c.idn.Serial, c.idn.Firmware}
	for _, f := range fields {
		if f == "" {
			f = "0"
		}
		r.ResultMnemonic(f)
	}
	return ResultOK
}

// CoreOpc implements *OPC: sets the OPC bit of the Standard Event Status
// event register.
func (c *Context) CoreOpc() Result {
	c.RegSetBits(ESR, SubEvent, ESRBitOPC)
	return ResultOK
}

// CoreOpcQ implements *OPC?: this stack completes every operation
// synchronously, so it always reports 1. An instrument with genuinely
// asynchronous operations overrides this handler.
func (c *Context) CoreOpcQ(r ResultSink) Result {
	r.ResultInt32(1)
	return ResultOK
}

// CoreRst implements *RST: delegates to the host's Interface.Reset, if any.
// It does not clear status; pair it with *CLS if that is the desired
// effect.
func (c *Context) CoreRst() Result {
	if c.face.Reset == nil {
		return ResultOK
	}
	return c.face.Reset(c)
}

// CoreSre implements *SRE <n>: assigns the Service Request Enable register
// and recomputes STB bit 6, raising ControlSRQ if it rises from 0 to 1.
func (c *Context) CoreSre(p ParamSource) Result {
	v, ok := p.ParamInt32(true)
	if !ok {
		return ResultErr
	}
	// SRE has no sub-registers; RegSet's sub argument is ignored for the
	// SRE sentinel group (see (*Context).regSet).
	c.RegSet(SRE, SubCond, uint16(v))
	return ResultOK
}

// CoreSreQ implements *SRE?: reports the Service Request Enable register.
func (c *Context) CoreSreQ(r ResultSink) Result {
	r.ResultInt32(int32(c.sre))
	return ResultOK
}

// CoreStbQ implements *STB?: reports the Status Byte register.
func (c *Context) CoreStbQ(r ResultSink) Result {
	r.ResultInt32(int32(c.stb))
	return ResultOK
}

// CoreTstQ implements *TST?: this stack has no self-test to run, so it
// always reports 0 (no fault found).
func (c *Context) CoreTstQ(r ResultSink) Result {
	r.ResultInt32(0)
	return ResultOK
}

// CoreWai implements *WAI: a no-op, since no operation in this stack is
// asynchronous.
func (c *Context) CoreWai() Result {
	return ResultOK
}
