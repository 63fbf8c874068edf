// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/schemecore/schemecore/internal/value"
)

func TestFindShadowing(t *testing.T) {
	outer := New()
	outer.Define("x", value.NewInt(1))

	inner := outer.Extend([]string{"x"}, []value.Value{value.NewInt(2)})

	v, ok := inner.Find("x")
	if !ok || !v.Equal(value.NewInt(2)) {
		t.Fatalf("expected inner x=2, got %v, %v", v, ok)
	}

	v, ok = outer.Find("x")
	if !ok || !v.Equal(value.NewInt(1)) {
		t.Fatalf("expected outer x=1 unaffected, got %v, %v", v, ok)
	}
}

func TestExtendDoesNotLeakToOlderClosures(t *testing.T) {
	outer := New()
	inner := outer.Extend([]string{"y"}, []value.Value{value.NewInt(1)})

	if _, ok := outer.Find("y"); ok {
		t.Fatalf("extend must not be visible to the frame it extended")
	}

	if _, ok := inner.Find("y"); !ok {
		t.Fatalf("expected inner to see its own binding")
	}
}

func TestModifyVisibleToSharers(t *testing.T) {
	e := New()
	e.Define("x", value.NewInt(1))

	child := e.Extend(nil, nil)

	if !child.Modify("x", value.NewInt(2)) {
		t.Fatalf("expected modify to find x in an ancestor frame")
	}

	v, _ := e.Find("x")
	if !v.Equal(value.NewInt(2)) {
		t.Fatalf("expected modify through child to mutate shared frame, got %v", v)
	}
}

func TestDefineMutatesSameFrame(t *testing.T) {
	e := New()
	e.Define("x", value.NewInt(1))
	e.Define("x", value.NewInt(2))

	v, ok := e.Find("x")
	if !ok || !v.Equal(value.NewInt(2)) {
		t.Fatalf("expected redefine to overwrite in place, got %v, %v", v, ok)
	}
}

func TestModifyReportsMissing(t *testing.T) {
	e := New()

	if e.Modify("nope", value.NewInt(1)) {
		t.Fatalf("expected Modify to report false for an unbound name")
	}
}
