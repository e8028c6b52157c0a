package maybe

import (
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/variant/pkg/variant"
)

func TestMap_NothingNeverInvokes(t *testing.T) {
	t.Parallel()

	m := Nothing[string]().Map(func(string) string {
		t.Fatalf("map func should not be called for nothing")
		return ""
	})

	if !m.IsNothing() {
		t.Fatalf("expected nothing to pass through map unchanged")
	}
}

func TestMap_Just(t *testing.T) {
	t.Parallel()

	got, err := Just("I am a value").Map(strings.ToUpper).Unwrap()
	if err != nil {
		t.Fatalf("expected unwrap to succeed, got: %v", err)
	}
	if got != "I AM A VALUE" {
		t.Fatalf("expected mapped value, got: %q", got)
	}
}

func TestMap_PackageLevelChangesType(t *testing.T) {
	t.Parallel()

	m := Map(Just("hello"), func(s string) int { return len(s) })
	got, err := m.Unwrap()
	if err != nil || got != 5 {
		t.Fatalf("expected just(5), got: %v, %v", got, err)
	}

	if !Map(Nothing[string](), func(s string) int { return len(s) }).IsNothing() {
		t.Fatalf("expected nothing to stay nothing across the type change")
	}
}

func TestUnwrap_Just(t *testing.T) {
	t.Parallel()

	got, err := Just(42).Unwrap()
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got: %v, %v", got, err)
	}
}

func TestUnwrap_NothingFails(t *testing.T) {
	t.Parallel()

	_, err := Nothing[string]().Unwrap()
	if err == nil {
		t.Fatalf("expected unwrap of nothing to fail")
	}
	if !errors.Is(err, variant.ErrEmptyUnwrap) {
		t.Fatalf("expected ErrEmptyUnwrap, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nothing") {
		t.Fatalf("expected message to mention nothing, got: %v", err)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	if got := Nothing[string]().UnwrapOr("YAY"); got != "YAY" {
		t.Fatalf("expected default, got: %q", got)
	}
	if got := Just("present").UnwrapOr("YAY"); got != "present" {
		t.Fatalf("expected contained value over default, got: %q", got)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	long := func(s string) bool { return len(s) > 3 }

	kept := Just("hello").Filter(long)
	if !kept.Equal(Just("hello")) {
		t.Fatalf("expected passing value to stay just, got: %s", kept)
	}
	if !Just("abc").Filter(long).IsNothing() {
		t.Fatalf("expected failing value to degrade to nothing")
	}

	dropped := Nothing[string]().Filter(func(string) bool {
		t.Fatalf("predicate should not be called for nothing")
		return true
	})
	if !dropped.IsNothing() {
		t.Fatalf("expected nothing to pass through filter unchanged")
	}
}

func TestSeq(t *testing.T) {
	t.Parallel()

	collect := func(m Maybe[int]) []int {
		var out []int
		for v := range m.Seq() {
			out = append(out, v)
		}
		return out
	}

	m := Just(7)
	first := collect(m)
	second := collect(m)
	if len(first) != 1 || first[0] != 7 {
		t.Fatalf("expected one value, got: %v", first)
	}
	if len(second) != 1 || second[0] != 7 {
		t.Fatalf("expected the sequence to restart, got: %v", second)
	}

	if got := collect(Nothing[int]()); len(got) != 0 {
		t.Fatalf("expected empty sequence for nothing, got: %v", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Just("x").Equal(Just("x")) {
		t.Fatalf("expected equal just values to compare equal")
	}
	if Just("x").Equal(Just("y")) {
		t.Fatalf("expected distinct just values to compare unequal")
	}
	if Just("x").Equal(Nothing[string]()) {
		t.Fatalf("expected just and nothing to compare unequal")
	}
	if !Nothing[string]().Equal(Nothing[string]()) {
		t.Fatalf("expected nothing values to compare equal")
	}

	var zero Maybe[string]
	if !zero.Equal(Nothing[string]()) {
		t.Fatalf("expected the zero Maybe to behave as nothing")
	}
}

func TestEqual_AsInstanceField(t *testing.T) {
	t.Parallel()

	holder := variant.MustNew("Holder", variant.Alt("cell", 1))
	cell := holder.Alternative("cell")

	a := cell.MustNew(Just(5))
	b := cell.MustNew(Just(5))
	c := cell.MustNew(Just(6))

	if !a.Equal(b) {
		t.Fatalf("expected instances holding equal Maybe fields to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected instances holding distinct Maybe fields to be unequal")
	}

	ha, err := a.Hash()
	if err != nil {
		t.Fatalf("unexpected hash failure: %v", err)
	}
	hb, err := b.Hash()
	if err != nil {
		t.Fatalf("unexpected hash failure: %v", err)
	}
	if ha != hb {
		t.Fatalf("expected equal instances to hash identically, got: %d vs %d", ha, hb)
	}

	if got := a.String(); got != "Holder.cell(Maybe.just(5))" {
		t.Fatalf("expected the Maybe field to render through its instance, got: %s", got)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Just("hello").String(); got != `Maybe.just("hello")` {
		t.Fatalf("expected Maybe.just representation, got: %s", got)
	}
	if got := Nothing[string]().String(); got != "Maybe.nothing()" {
		t.Fatalf("expected Maybe.nothing representation, got: %s", got)
	}
}

func TestInstance_ParticipatesInMatching(t *testing.T) {
	t.Parallel()

	m := Just("hello")
	fields, ok := Family.Alternative("just").Match(m)
	if !ok || fields[0] != "hello" {
		t.Fatalf("expected the wrapper to match through its instance, got: ok=%v fields=%v", ok, fields)
	}
}
