package scpi

// ErrorClear empties the error queue and clears the error-queue-not-empty
// summary bit (STB bit 2). It does not touch ESR or any other register.
func (c *Context) ErrorClear() {
	c.checkReentrant()
	c.errs.clear()
	c.syncErrorSummary()
}

// ErrorPush appends code to the error queue. Code 0 is a no-op: NO_ERROR is
// only ever produced by ErrorPop on an empty queue, never stored.
func (c *Context) ErrorPush(code int16) {
	c.ErrorPushEx(code, "")
}

// ErrorPushEx appends code with an accompanying description to the error
// queue. If the queue is already at capacity, the newest entry is dropped
// and the last slot is overwritten with -350 "Queue overflow" instead.
// Pushing any code other than 0 sets STB bit 2 and, depending on the code's
// range, the matching ESR event bit (see classifyESR below).
func (c *Context) ErrorPushEx(code int16, info string) {
	c.checkReentrant()
	if code == 0 {
		return
	}
	c.errs.push(code, info)
	c.syncErrorSummary()
	c.classifyESR(code)
}

// ErrorPop removes and returns the oldest queued error. When the queue is
// empty it returns a zero Error (code 0, empty Info) and false.
func (c *Context) ErrorPop() (Error, bool) {
	c.checkReentrant()
	e, ok := c.errs.pop()
	c.syncErrorSummary()
	return e, ok
}

// ErrorCount returns the number of errors currently queued.
func (c *Context) ErrorCount() int32 {
	return c.errs.len()
}

// ErrorTranslate returns the human-readable message for code, or "" if code
// is not present in this Context's translation table (see
// WithStandardErrors / WithAllStandardErrors).
func (c *Context) ErrorTranslate(code int16) string {
	return c.errs.translate(code)
}

func (c *Context) syncErrorSummary() {
	if c.errs.len() > 0 {
		c.stb |= StatusErr
	} else {
		c.stb &^= StatusErr
	}
	c.recomputeSRQ()
}

// classifyESR sets the ESR event bit the SCPI standard assigns to code's
// numeric range, via RegSetBits so the change propagates normally.
//
//	-100..-199  Command Error     (bit 5)
//	-200..-299  Execution Error   (bit 4)
//	-300..-399  Device-Dependent  (bit 3)
//	-400..-499  Query Error       (bit 2)
//	other       no ESR bit
func (c *Context) classifyESR(code int16) {
	var bit uint16
	switch {
	case code <= -100 && code >= -199:
		bit = ESRBitCmd
	case code <= -200 && code >= -299:
		bit = ESRBitExec
	case code <= -300 && code >= -399:
		bit = ESRBitDevice
	case code <= -400 && code >= -499:
		bit = ESRBitQuery
	default:
		return
	}
	c.regSetBits(ESR, SubEvent, bit)
}
