package scpi

import "testing"

// TestCoreClsSemantics walks spec scenario 4: *CLS empties the error queue
// and zeroes every EVENT sub-register, but leaves ENAB (and PTR/NTR)
// untouched.
func TestCoreClsSemantics(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	ctx.RegSet(ESR, SubEnab, 0xFF)
	ctx.ErrorPush(-101)
	ctx.ErrorPush(-102)
	ctx.ErrorPush(-103)
	ctx.RegSetBits(ESR, SubEvent, 0x10)

	if got := ctx.CoreCls(); got != ResultOK {
		t.Fatalf("*CLS result = %v, want ResultOK", got)
	}

	if got := ctx.ErrorCount(); got != 0 {
		t.Errorf("ErrorCount() = %d, want 0", got)
	}
	if got := ctx.regPeek(ESR, SubEvent); got != 0 {
		t.Errorf("ESR.EVENT = %#x, want 0", got)
	}
	if got := ctx.regPeek(ESR, SubEnab); got != 0xFF {
		t.Errorf("ESR.ENAB = %#x, want 0xFF (preserved)", got)
	}

	sink := &fakeResultSink{}
	ctx.CoreStbQ(sink)
	if got := uint8(sink.lastInt()); got != 0 {
		t.Errorf("STB = %#x after *CLS, want 0", got)
	}
}

func TestCoreEseRoundTrip(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	if got := ctx.CoreEse(intParam(0x3F)); got != ResultOK {
		t.Fatalf("*ESE result = %v, want ResultOK", got)
	}

	sink := &fakeResultSink{}
	ctx.CoreEseQ(sink)
	if got := sink.lastInt(); got != 0x3F {
		t.Fatalf("*ESE? = %#x, want 0x3F", got)
	}
}

func TestCoreEseMissingArgumentFails(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if got := ctx.CoreEse(fakeParamSource{ok: false}); got != ResultErr {
		t.Fatalf("*ESE with no argument = %v, want ResultErr", got)
	}
}

func TestCoreIdnQWithMissingField(t *testing.T) {
	ctx, err := NewContext(WithIDN(IDN{
		Manufacturer: "ACME",
		Model:        "X1",
		Firmware:     "1.0",
	}))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	sink := &fakeResultSink{}
	ctx.CoreIdnQ(sink)
	want := []string{"ACME", "X1", "0", "1.0"}
	if len(sink.mnemonics) != len(want) {
		t.Fatalf("*IDN? fields = %v, want %v", sink.mnemonics, want)
	}
	for i, w := range want {
		if sink.mnemonics[i] != w {
			t.Errorf("*IDN? field %d = %q, want %q", i, sink.mnemonics[i], w)
		}
	}
}

func TestCoreRstDelegatesToInterface(t *testing.T) {
	called := false
	ctx, err := NewContext(WithInterface(Interface{
		Reset: func(c *Context) Result {
			called = true
			return ResultOK
		},
	}))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	ctx.RegSet(ESR, SubEnab, 0xFF)
	if got := ctx.CoreRst(); got != ResultOK {
		t.Fatalf("*RST result = %v, want ResultOK", got)
	}
	if !called {
		t.Fatal("*RST did not call the Reset callback")
	}
	// *RST must not clear status by itself.
	if got := ctx.regPeek(ESR, SubEnab); got != 0xFF {
		t.Errorf("ESR.ENAB = %#x after *RST, want unchanged 0xFF", got)
	}
}

func TestCoreRstWithNoInterfaceIsNoOp(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if got := ctx.CoreRst(); got != ResultOK {
		t.Fatalf("*RST with no Reset callback = %v, want ResultOK", got)
	}
}

func TestCoreSreRaisesSRQOnRisingEdge(t *testing.T) {
	var srqCount int
	ctx, err := NewContext(WithInterface(Interface{
		Control: func(_ *Context, ctrl Control, _ uint8) {
			if ctrl == ControlSRQ {
				srqCount++
			}
		},
	}))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	ctx.RegSet(ESR, SubEnab, 0x01)
	ctx.CoreOpc()

	if got := ctx.CoreSre(intParam(0x20)); got != ResultOK {
		t.Fatalf("*SRE result = %v, want ResultOK", got)
	}
	if srqCount != 1 {
		t.Fatalf("SRQ fired %d times, want 1", srqCount)
	}

	sink := &fakeResultSink{}
	ctx.CoreSreQ(sink)
	if got := sink.lastInt(); got != 0x20 {
		t.Fatalf("*SRE? = %#x, want 0x20", got)
	}
}

func TestCoreOpcQAlwaysReportsComplete(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	sink := &fakeResultSink{}
	ctx.CoreOpcQ(sink)
	if got := sink.lastInt(); got != 1 {
		t.Fatalf("*OPC? = %d, want 1", got)
	}
}

func TestCoreTstQAlwaysReportsNoFault(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	sink := &fakeResultSink{}
	ctx.CoreTstQ(sink)
	if got := sink.lastInt(); got != 0 {
		t.Fatalf("*TST? = %d, want 0", got)
	}
}

func TestCoreWaiIsNoOp(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if got := ctx.CoreWai(); got != ResultOK {
		t.Fatalf("*WAI result = %v, want ResultOK", got)
	}
}
