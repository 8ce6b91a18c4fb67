package report

// Result is a Case together with the value the predicate returned.
type Result struct {
	Case
	Got bool
}

func (r Result) Passed() bool {
	return r.Got == r.Want
}

// Run evaluates check on every case input, in order.
func Run(cases []Case, check func(string) bool) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, Result{Case: c, Got: check(c.Input)})
	}
	return results
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
