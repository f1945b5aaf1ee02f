package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kv-77/resultkit/pkg/result/opt"
)

func TestSuccess_IsError(t *testing.T) {
	t.Parallel()
	r := Success[int, string](5)
	if r.IsError() {
		t.Fatalf("expected success, got error: %v", r.Err())
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got %v", r.Value())
	}
}

func TestError_IsError(t *testing.T) {
	t.Parallel()
	r := Error[int]("boom")
	if !r.IsError() {
		t.Fatalf("expected error, got success: %v", r.Value())
	}
	if r.Err() != "boom" {
		t.Fatalf("expected error 'boom', got %v", r.Err())
	}
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	r := Success[int, string](7)
	mapped := Map(r, func(v int) int { return v })
	if mapped != r {
		t.Fatalf("map(identity) changed the result: %v vs %v", mapped, r)
	}
}

func TestMap_Composition(t *testing.T) {
	t.Parallel()
	f := func(v int) int { return v + 1 }
	g := func(v int) int { return v * 2 }
	r := Success[int, string](3)

	chained := Map(Map(r, f), g)
	composed := Map(r, func(v int) int { return g(f(v)) })
	if chained != composed {
		t.Fatalf("map composition law violated: %v vs %v", chained, composed)
	}
}

func TestMap_ErrorPassesThrough(t *testing.T) {
	t.Parallel()
	r := Error[int]("nope")
	called := false
	mapped := Map(r, func(v int) string {
		called = true
		return strconv.Itoa(v)
	})
	if called {
		t.Fatalf("transformation must not run for an error result")
	}
	if !mapped.IsError() || mapped.Err() != "nope" {
		t.Fatalf("expected error 'nope' to pass through, got %v", mapped)
	}
}

func TestFlatMap_MonadLaws(t *testing.T) {
	t.Parallel()
	f := func(v int) Result[string, string] { return Success[string, string](strconv.Itoa(v)) }

	left := FlatMap(Success[int, string](42), f)
	if left != f(42) {
		t.Fatalf("left identity violated: %v vs %v", left, f(42))
	}

	failed := FlatMap(Error[int]("e"), f)
	if failed != Error[string]("e") {
		t.Fatalf("flatMap over error must keep the error: %v", failed)
	}
}

func TestFlatMap_TransformationError(t *testing.T) {
	t.Parallel()
	r := FlatMap(Success[int, string](1), func(int) Result[int, string] {
		return Error[int]("inner")
	})
	if !r.IsError() || r.Err() != "inner" {
		t.Fatalf("expected error 'inner', got %v", r)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	calls := 0
	transform := func(e string) string { calls++; return "wrapped: " + e }

	ok := MapError(Success[int, string](9), transform)
	if ok != Success[int, string](9) {
		t.Fatalf("mapError must not touch a success: %v", ok)
	}
	if calls != 0 {
		t.Fatalf("transformation ran %d times for a success", calls)
	}

	failed := MapError(Error[int]("low"), transform)
	if failed.Err() != "wrapped: low" || calls != 1 {
		t.Fatalf("expected exactly one transformation, got %v after %d calls", failed, calls)
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	next := Success[string, string]("next")
	if got := AndThen(Success[int, string](1), next); got != next {
		t.Fatalf("success.andThen must return the successor verbatim: %v", got)
	}

	failedNext := Error[string]("right")
	if got := AndThen(Success[int, string](1), failedNext); got != failedNext {
		t.Fatalf("success.andThen must return the successor even when failed: %v", got)
	}

	if got := AndThen(Error[int]("left"), next); got != Error[string]("left") {
		t.Fatalf("error.andThen must keep the leftmost error: %v", got)
	}
}

func TestRecoverError(t *testing.T) {
	t.Parallel()
	if got := Success[int, string](4).RecoverError(func(string) int { return -1 }); got != 4 {
		t.Fatalf("expected original value 4, got %v", got)
	}
	if got := Error[int]("e").RecoverError(func(e string) int { return len(e) }); got != 1 {
		t.Fatalf("expected recovery value 1, got %v", got)
	}
}

func TestThrowError(t *testing.T) {
	t.Parallel()
	v, err := Success[int, string](11).ThrowError(func(e string) error { return errors.New(e) })
	if err != nil || v != 11 {
		t.Fatalf("expected (11, nil), got (%v, %v)", v, err)
	}

	want := errors.New("converted")
	_, err = Error[int]("ignored").ThrowError(func(string) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected exactly the converted error, got %v", err)
	}
}

func TestIfSuccess(t *testing.T) {
	t.Parallel()
	var seen []int
	Success[int, string](3).IfSuccess(func(v int) { seen = append(seen, v) })
	Error[int]("e").IfSuccess(func(v int) { seen = append(seen, v) })
	if len(seen) != 1 || seen[0] != 3 {
		t.Fatalf("expected consumer to run once with 3, got %v", seen)
	}
}

func TestDiscardError(t *testing.T) {
	t.Parallel()
	if v, ok := Success[int, string](8).DiscardError().Get(); !ok || v != 8 {
		t.Fatalf("expected Some(8), got (%v, %v)", v, ok)
	}
	if _, ok := Error[int]("e").DiscardError().Get(); ok {
		t.Fatalf("expected None for an error result")
	}
}

func TestFromOpt(t *testing.T) {
	t.Parallel()
	if got := FromOpt(opt.Some(2), "absent"); got != Success[int, string](2) {
		t.Fatalf("expected success 2, got %v", got)
	}
	if got := FromOpt(opt.None[int](), "absent"); got != Error[int]("absent") {
		t.Fatalf("expected error 'absent', got %v", got)
	}
}

func TestFromOptResult(t *testing.T) {
	t.Parallel()
	absent := FromOptResult(opt.None[Result[int, string]]())
	if absent.IsError() {
		t.Fatalf("absent input must become a success: %v", absent.Err())
	}
	if absent.Value().IsSome() {
		t.Fatalf("absent input must carry None, got %v", absent.Value())
	}

	present := FromOptResult(opt.Some(Success[int, string](5)))
	if v, ok := present.Value().Get(); present.IsError() || !ok || v != 5 {
		t.Fatalf("expected Success(Some(5)), got %v", present)
	}

	failed := FromOptResult(opt.Some(Error[int]("e")))
	if !failed.IsError() || failed.Err() != "e" {
		t.Fatalf("inner error must pass through, got %v", failed)
	}
}

func TestMappingHelpers(t *testing.T) {
	t.Parallel()
	toStr := Mapping[int, string, string](strconv.Itoa)
	if got := toStr(Success[int, string](12)); got != Success[string, string]("12") {
		t.Fatalf("mapping helper: expected success '12', got %v", got)
	}

	half := FlatMapping[int, int, string](func(v int) Result[int, string] {
		if v%2 != 0 {
			return Error[int]("odd")
		}
		return Success[int, string](v / 2)
	})
	if got := half(Success[int, string](10)); got != Success[int, string](5) {
		t.Fatalf("flatMapping helper: expected success 5, got %v", got)
	}
	if got := half(Success[int, string](3)); got != Error[int]("odd") {
		t.Fatalf("flatMapping helper: expected error 'odd', got %v", got)
	}

	upper := ErrorMapping[int](func(e string) string { return "E:" + e })
	if got := upper(Error[int]("x")); got != Error[int]("E:x") {
		t.Fatalf("errorMapping helper: expected error 'E:x', got %v", got)
	}
}
