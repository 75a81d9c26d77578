package onboarding

import (
	"strconv"
	"strings"
)

// CompareVersions compares dotted-integer versions such as "1.2.10" component
// by component. Missing trailing components count as zero, so "1.2" equals
// "1.2.0". Components that are not integers also count as zero. The result
// is -1 if a < b, 0 if a == b, and +1 if a > b.
func CompareVersions(a, b string) int {
	as, bs := splitVersion(a), splitVersion(b)
	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		x, y := component(as, i), component(bs, i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

func splitVersion(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return strings.Split(v, ".")
}

func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
