// Package doctest provides shared test utilities for document format
// implementations.
//
// Every format package runs the same round-trip checks: a parsed document
// must marshal into text that parses back to an equal value, and formatting
// formatted text must not change it again.
package doctest

import (
	"testing"

	"github.com/yacchi/docfmt/document"
)

// DecodeFunc decodes text into a generic value used for structural
// comparison. It is supplied by the format package under test.
type DecodeFunc func(data []byte) (any, error)

// Case is a single input for the RoundTripTester.
type Case struct {
	// Name is the subtest name.
	Name string
	// Input is the source text.
	Input string
	// Want, when non-empty, is the exact expected Marshal output.
	Want string
}

// RoundTripTester runs round-trip checks against a document.Parser.
type RoundTripTester struct {
	t      *testing.T
	parser document.Parser
	decode DecodeFunc
}

// NewRoundTripTester creates a tester for the given parser.
//
// Example:
//
//	func TestRoundTrip(t *testing.T) {
//	    doctest.NewRoundTripTester(t, json.NewParser(), decodeJSON).Run(cases...)
//	}
func NewRoundTripTester(t *testing.T, parser document.Parser, decode DecodeFunc) *RoundTripTester {
	return &RoundTripTester{t: t, parser: parser, decode: decode}
}

// Run executes the round-trip checks for every case as a subtest.
func (rt *RoundTripTester) Run(cases ...Case) {
	for _, tc := range cases {
		rt.t.Run(tc.Name, func(t *testing.T) {
			rt.roundTrip(t, tc)
		})
	}
}

func (rt *RoundTripTester) roundTrip(t *testing.T, tc Case) {
	t.Helper()

	doc, err := rt.parser.Parse([]byte(tc.Input))
	requireNoError(t, err, "Parse(%q) error = %v", tc.Input, err)
	check(t, doc.Format() == rt.parser.Format(), "Format() = %q, want %q", doc.Format(), rt.parser.Format())

	out, err := doc.Marshal()
	requireNoError(t, err, "Marshal() error = %v", err)
	if tc.Want != "" {
		check(t, string(out) == tc.Want, "Marshal() = %q, want %q", out, tc.Want)
	}

	want, err := rt.decode([]byte(tc.Input))
	requireNoError(t, err, "decode(input) error = %v", err)
	got, err := rt.decode(out)
	requireNoError(t, err, "decode(output) error = %v\noutput:\n%s", err, out)
	check(t, ValuesEqual(got, want), "round trip changed the value:\ngot  %#v\nwant %#v", got, want)

	again, err := rt.parser.Parse(out)
	requireNoError(t, err, "Parse(output) error = %v\noutput:\n%s", err, out)
	out2, err := again.Marshal()
	requireNoError(t, err, "Marshal() of formatted output error = %v", err)
	check(t, string(out2) == string(out), "formatting is not idempotent:\nfirst:\n%s\nsecond:\n%s", out, out2)
}

// RunInvalid asserts that every case fails to parse.
func (rt *RoundTripTester) RunInvalid(cases ...Case) {
	for _, tc := range cases {
		rt.t.Run(tc.Name, func(t *testing.T) {
			doc, err := rt.parser.Parse([]byte(tc.Input))
			require(t, err != nil, "Parse(%q) = %v, want error", tc.Input, doc)
		})
	}
}
