package grapheme

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "Hello World"
	s := StringFromString(input)
	if s == nil {
		t.Fatalf("resulting grapheme string should not be nil")
	}
	x := s.Nth(2)
	if x != "l" {
		t.Errorf("expected s.Nth(2) to be 'l', is %#v", x)
	}
	if l := s.Len(); l != 11 {
		t.Errorf("expected s.Len() to be 11, is %d", s.Len())
	}
}

func TestChineseString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "世界"
	s := StringFromString(input)
	if l := s.Len(); l != 2 {
		t.Errorf("expected \"%s\".Len() to be 2, is %d", input, s.Len())
	}
	x := s.Nth(1)
	t.Logf("number of bytes for 2nd grapheme: %d", len(s.Nth(1))) // => 3
	if x != "界" {
		t.Errorf("expected s.Nth(1) to be '界', is %s", x)
	}
}

func TestEmptyString(t *testing.T) {
	s := StringFromString("")
	if s.Len() != 0 || s.Nth(0) != "" {
		t.Errorf("expected empty grapheme string")
	}
}
