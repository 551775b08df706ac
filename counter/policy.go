package counter

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Policy 決定 Increment 如何取得對共享值的獨佔存取
type Policy int

const (
	// Unsynchronized 沒有任何保護，只用來重現 lost update
	Unsynchronized Policy = iota
	// MutexGuarded 每次 read-modify-write 都持有 sync.Mutex
	MutexGuarded
	// AtomicHardware 使用 atomic fetch-and-add，不需要鎖
	AtomicHardware
)

var policyNames = [...]string{
	Unsynchronized: "Unsynchronized",
	MutexGuarded:   "MutexGuarded",
	AtomicHardware: "AtomicHardware",
}

func (p Policy) String() string {
	if !p.valid() {
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// Guaranteed reports whether the policy obligates observed == expected.
func (p Policy) Guaranteed() bool {
	return p == MutexGuarded || p == AtomicHardware
}

func (p Policy) valid() bool {
	return p >= Unsynchronized && p <= AtomicHardware
}

// Policies returns every policy in demonstration order: the race, the lock fix, the atomic fix.
func Policies() []Policy {
	return []Policy{Unsynchronized, MutexGuarded, AtomicHardware}
}

// ParsePolicy accepts a policy name (case-insensitive) or one of the aliases none, mutex, atomic.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unsynchronized", "none":
		return Unsynchronized, nil
	case "mutexguarded", "mutex":
		return MutexGuarded, nil
	case "atomichardware", "atomic":
		return AtomicHardware, nil
	}
	return 0, errors.Errorf("unknown policy %q", s)
}
