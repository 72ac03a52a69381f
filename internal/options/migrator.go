package options

import (
	"encoding/json"
	"math"
	"strconv"
)

// Transform returns the replacement for an option value. It returns false
// when the value has a shape it does not handle, leaving the option untouched.
type Transform func(value any) (any, bool)

// Rule rewrites one option for saves written before a release. Before is the
// first release that writes the option in its new form. A rule with a nil
// Transform does nothing.
type Rule struct {
	Name      string
	Before    Version
	Key       string
	Transform Transform
}

// AppliesTo reports whether the rule is gated open for version v.
func (r Rule) AppliesTo(v Version) bool {
	return v.Less(r.Before)
}

func (r Rule) apply(opts Collection) {
	if r.Transform == nil {
		return
	}
	old, ok := opts.Get(r.Key)
	if !ok {
		return
	}
	if value, ok := r.Transform(old); ok {
		opts.Set(r.Key, value)
	}
}

// Migrator applies an ordered list of rules in a single pass.
type Migrator struct {
	rules []Rule
}

// New returns a Migrator applying rules in the given order.
func New(rules ...Rule) *Migrator {
	return &Migrator{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the migrator's rules.
func (m *Migrator) Rules() []Rule {
	return append([]Rule(nil), m.rules...)
}

// Pending returns, in order, the rules that Migrate would apply for v.
func (m *Migrator) Pending(v Version) []Rule {
	var pending []Rule
	for _, r := range m.rules {
		if r.AppliesTo(v) {
			pending = append(pending, r)
		}
	}
	return pending
}

// Migrate rewrites the options of a save written by version v. Only keys named
// by an open rule are touched; keys are never added or removed.
//
// Rules are not guarded against double application. Running Migrate twice on
// the same collection with the same old version applies each rule twice.
func (m *Migrator) Migrate(v Version, opts Collection) {
	for _, r := range m.Pending(v) {
		r.apply(opts)
	}
}

// TurnTimerToSeconds converts the turn timer from minutes to seconds.
// It is not active: the release that changed the unit has not been confirmed.
var TurnTimerToSeconds = Rule{
	Name:      "turn-timer-seconds",
	Before:    MustParseVersion("0.50.07"),
	Key:       TurnTimer,
	Transform: ScaleInt(60),
}

// Default holds the active rules. It has none.
var Default = New()

// Migrate runs the Default migrator.
func Migrate(v Version, opts Collection) {
	Default.Migrate(v, opts)
}

// ScaleInt multiplies integer values by factor. It handles Go integer types,
// integral float64 values and json.Number literals holding an integer, such
// as "5", "5.0" or "5e1". A product that does not fit the value's type is
// rejected, leaving the option untouched.
func ScaleInt(factor int) Transform {
	f := int64(factor)
	return func(value any) (any, bool) {
		switch n := value.(type) {
		case int:
			p, ok := mulInt64(int64(n), f)
			if !ok || p < math.MinInt || p > math.MaxInt {
				return nil, false
			}
			return int(p), true
		case int32:
			p, ok := mulInt64(int64(n), f)
			if !ok || p < math.MinInt32 || p > math.MaxInt32 {
				return nil, false
			}
			return int32(p), true
		case int64:
			p, ok := mulInt64(n, f)
			if !ok {
				return nil, false
			}
			return p, true
		case float64:
			if math.Trunc(n) != n || math.IsInf(n, 0) {
				return nil, false
			}
			p := n * float64(factor)
			if math.IsInf(p, 0) {
				return nil, false
			}
			return p, true
		case json.Number:
			i, ok := jsonInt(n)
			if !ok {
				return nil, false
			}
			p, ok := mulInt64(i, f)
			if !ok {
				return nil, false
			}
			return json.Number(strconv.FormatInt(p, 10)), true
		}
		return nil, false
	}
}

// jsonInt returns the integer held by n, accepting integral literals written
// with a fraction or exponent.
func jsonInt(n json.Number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	fl, err := n.Float64()
	if err != nil || math.Trunc(fl) != fl || fl < math.MinInt64 || fl >= math.MaxInt64 {
		return 0, false
	}
	return int64(fl), true
}

// mulInt64 returns a*b and false if the product overflows int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}
