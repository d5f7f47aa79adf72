package scpi

// fakeParamSource adapts a single pre-parsed int32 to ParamSource, standing
// in for the SCPI parser collaborator in tests.
type fakeParamSource struct {
	value int32
	ok    bool
}

func intParam(v int32) fakeParamSource { return fakeParamSource{value: v, ok: true} }

func (p fakeParamSource) ParamInt32(mandatory bool) (int32, bool) {
	return p.value, p.ok
}

// fakeResultSink collects everything a command handler reports, standing in
// for the SCPI formatter collaborator in tests.
type fakeResultSink struct {
	ints      []int32
	mnemonics []string
}

func (r *fakeResultSink) ResultInt32(v int32)    { r.ints = append(r.ints, v) }
func (r *fakeResultSink) ResultMnemonic(v string) { r.mnemonics = append(r.mnemonics, v) }

func (r *fakeResultSink) lastInt() int32 {
	if len(r.ints) == 0 {
		return 0
	}
	return r.ints[len(r.ints)-1]
}
