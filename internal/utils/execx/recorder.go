package execx

// Call is one command invocation made through a Recorder.
type Call struct {
	Name string
	Args []string
}

// Recorder is a Runner for tests. It records every call and returns canned
// results instead of spawning anything.
type Recorder struct {
	Calls []Call

	// Result is returned from every call unless OnRun is set.
	Result Result
	// Stdout is returned from Output calls.
	Stdout string
	// OnRun, when set, decides the result per call. Useful for fakes that
	// create files the way the real tool would.
	OnRun func(Call) Result
}

func (r *Recorder) Interactive(name string, args ...string) Result {
	c := Call{Name: name, Args: args}
	r.Calls = append(r.Calls, c)

	if r.OnRun != nil {
		return r.OnRun(c)
	}
	return r.Result
}

func (r *Recorder) Output(name string, args ...string) (string, Result) {
	c := Call{Name: name, Args: args}
	r.Calls = append(r.Calls, c)

	if r.OnRun != nil {
		return r.Stdout, r.OnRun(c)
	}
	return r.Stdout, r.Result
}
