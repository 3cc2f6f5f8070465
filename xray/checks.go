package xray

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/bitrise-steplib/steps-k6-xray-report/k6summary"
)

// IssueKeyPattern matches "<prefix>-<digits>", for example QA-123 for the QA prefix.
func IssueKeyPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + `-\d+`)
}

// extractIssueKey returns the first issue key matched by pattern in label.
func extractIssueKey(label string, pattern *regexp.Regexp) (string, bool) {
	key := pattern.FindString(label)
	return key, key != ""
}

// CheckCounts ...
type CheckCounts struct {
	Passes int
	Fails  int
}

// countChecks sums every check, including the ones without an issue key.
func countChecks(groups []k6summary.Group) CheckCounts {
	var counts CheckCounts
	for _, group := range groups {
		for _, check := range group.Checks {
			counts.Passes += check.Passes
			counts.Fails += check.Fails
		}
	}
	return counts
}

type checkResults struct {
	passed []string
	failed []string
}

// classifyChecks sorts the issue keys of the checks into passed and failed ones.
// A key which failed anywhere is only listed as failed.
func classifyChecks(groups []k6summary.Group, pattern *regexp.Regexp) checkResults {
	passed := newKeySet()
	failed := newKeySet()

	for _, group := range groups {
		for _, check := range group.Checks {
			key, ok := extractIssueKey(check.Label(), pattern)
			if !ok {
				continue
			}

			if check.Fails > 0 {
				failed.add(key)
			} else if check.Passes > 0 {
				passed.add(key)
			}
		}
	}

	return checkResults{
		passed: passed.without(failed),
		failed: failed.keys,
	}
}

// IterationTiming holds the iteration_duration bounds of a run.
type IterationTiming struct {
	Min float64
	Max float64
}

// FormattedMin is Min with two decimals, as reported by k6.
func (t IterationTiming) FormattedMin() string {
	return formatTwoDecimals(t.Min)
}

// FormattedMax is Max converted from milliseconds to seconds, with two decimals.
func (t IterationTiming) FormattedMax() string {
	return formatTwoDecimals(t.Max / 1000)
}

// formatTwoDecimals rounds the exact binary value of v to two decimals, ties away from zero.
// fmt rounds ties to even, which turns 0.125 into 0.12 instead of 0.13.
func formatTwoDecimals(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	scaled := new(big.Float).SetPrec(128).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(100))
	scaled.Add(scaled, big.NewFloat(0.5))
	cents, _ := scaled.Int(nil)

	whole, frac := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s%s.%02d", sign, whole.String(), frac.Int64())
}

type keySet struct {
	keys []string
	seen map[string]bool
}

func newKeySet() *keySet {
	return &keySet{seen: map[string]bool{}}
}

func (s *keySet) add(key string) {
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.keys = append(s.keys, key)
}

func (s *keySet) without(other *keySet) []string {
	var keys []string
	for _, key := range s.keys {
		if !other.seen[key] {
			keys = append(keys, key)
		}
	}
	return keys
}
