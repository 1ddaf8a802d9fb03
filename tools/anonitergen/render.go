package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"go.abhg.dev/anoniter/internal/must"
)

//go:embed *.tmpl
var _templateFS embed.FS

var _templates = template.Must(template.ParseFS(_templateFS, "*.tmpl"))

// fileData is the input to a template.
type fileData struct {
	Package    string
	ImportPath string // used by iter_test.go.tmpl
	Arities    []arity
}

// arity is a wrapper type with N variants.
type arity struct {
	N        int
	Variants []variant
}

func newArity(n int) arity {
	must.Bef(n > 0, "arity must be positive, got %d", n)

	vs := make([]variant, n)
	for i := range vs {
		vs[i] = variant{K: i + 1}
	}
	return arity{N: n, Variants: vs}
}

// arities returns wrapper types for every arity in [lo, hi].
func arities(lo, hi int) []arity {
	as := make([]arity, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		as = append(as, newArity(n))
	}
	return as
}

// Params is the comma-separated list of variant type parameters.
func (a arity) Params() string {
	return a.join(func(v variant) string { return "I" + strconv.Itoa(v.K) })
}

// Payloads is the comma-separated list of variant types used by tests.
func (a arity) Payloads() string {
	return a.join(variant.Payload)
}

// Constructors is a doc comment fragment linking to the constructors.
func (a arity) Constructors() string {
	first, last := a.constructor(a.Variants[0]), a.constructor(a.Last())
	if a.N == 2 {
		return first + " or " + last
	}
	return first + " through " + last
}

// Last is the variant with the highest K.
func (a arity) Last() variant {
	return a.Variants[len(a.Variants)-1]
}

func (a arity) constructor(v variant) string {
	return fmt.Sprintf("[Iter%dI%d]", a.N, v.K)
}

func (a arity) join(f func(variant) string) string {
	parts := make([]string, len(a.Variants))
	for i, v := range a.Variants {
		parts[i] = f(v)
	}
	return strings.Join(parts, ", ")
}

// variant is the K-th variant of a wrapper type, 1-indexed.
type variant struct {
	K int
}

// Ordinal spells out K as an ordinal: 1st, 2nd, and so on.
func (v variant) Ordinal() string {
	return ordinal(v.K)
}

// Payload is the type tests wrap in this variant.
// Odd variants hold slices and even variants hold ranges
// so that every wrapper mixes payload types.
func (v variant) Payload() string {
	if v.K%2 == 1 {
		return "sliceInts"
	}
	return "rangeInts"
}

// Draw is the test function that generates a Payload.
func (v variant) Draw() string {
	if v.K%2 == 1 {
		return "drawSlice"
	}
	return "drawRange"
}

func ordinal(n int) string {
	must.Bef(n > 0, "ordinal of non-positive number %d", n)

	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
		// 11th, 12th, 13th
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// render executes the named template and formats the result.
func render(w io.Writer, name string, data fileData) error {
	var buf bytes.Buffer
	if err := _templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %v: %w", name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %v: %w", name, err)
	}

	_, err = w.Write(src)
	return err
}
