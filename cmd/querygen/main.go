// Command querygen writes the fixed-arity query and row types of package ecs.
//
//	go run ./cmd/querygen -out ecs/query_generated.go -max 12
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// fields names the row fields; it also bounds the maximum arity.
const fields = "ABCDEFGHIJKL"

type param struct {
	Index int
	Type  string
	Field string
	Var   string
	Term  string
}

type arity struct {
	N      int
	Params []param
}

// TypeParams renders "T1, T2".
func (a arity) TypeParams() string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = p.Type
	}
	return strings.Join(names, ", ")
}

// Terms renders "t1, t2".
func (a arity) Terms() string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = p.Term
	}
	return strings.Join(names, ", ")
}

// Members renders "q.m1, q.m2".
func (a arity) Members() string {
	names := make([]string, len(a.Params))
	for i, p := range a.Params {
		names[i] = "q." + p.Var
	}
	return strings.Join(names, ", ")
}

// Args renders "t1 Term[T1], t2 Term[T2]".
func (a arity) Args() string {
	args := make([]string, len(a.Params))
	for i, p := range a.Params {
		args[i] = fmt.Sprintf("%s Term[%s]", p.Term, p.Type)
	}
	return strings.Join(args, ", ")
}

const source = `// Code generated by querygen. DO NOT EDIT.

package ecs

import "iter"
{{range .}}{{$n := .N}}{{$tp := .TypeParams}}
// Row{{$n}} holds the items of one joined entity, in term order.
type Row{{$n}}[{{$tp}} any] struct {
{{- range .Params}}
	{{.Field}} {{.Type}}
{{- end}}
}

// Query{{$n}} joins {{$n}} component {{if eq $n 1}}container{{else}}containers{{end}}.
type Query{{$n}}[{{$tp}} any] struct {
	queryBase
{{- range .Params}}
	{{.Var}} member[{{.Type}}]
{{- end}}
}

// NewQuery{{$n}} builds a query over {{$n}} {{if eq $n 1}}term{{else}}terms{{end}}. It fails if a component type is unregistered or if
// a term conflicts with a borrow held by another live query.
func NewQuery{{$n}}[{{$tp}} any](src Source, {{.Args}}) (*Query{{$n}}[{{$tp}}], error) {
	base, err := openQuery(src, {{.Terms}})
	if err != nil {
		return nil, err
	}
	q := &Query{{$n}}[{{$tp}}]{
		queryBase: base,
{{- range .Params}}
		{{.Var}}: {{.Term}}.bind(base.storage),
{{- end}}
	}
	src.track(q)
	return q, nil
}

// Get fetches the items of every term for e. It returns false if e lacks any of them.
func (q *Query{{$n}}[{{$tp}}]) Get(e Entity) (Row{{$n}}[{{$tp}}], bool) {
	var row Row{{$n}}[{{$tp}}]
	if !q.fill(e, &row) {
		return Row{{$n}}[{{$tp}}]{}, false
	}
	return row, true
}

// Join iterates over the entities present in every container of the query.
func (q *Query{{$n}}[{{$tp}}]) Join() iter.Seq2[Entity, Row{{$n}}[{{$tp}}]] {
	return func(yield func(Entity, Row{{$n}}[{{$tp}}]) bool) {
		var row Row{{$n}}[{{$tp}}]
		for e := range smallest({{.Members}}).keys() {
			if !q.fill(e, &row) {
				continue
			}
			if !yield(e, row) {
				return
			}
		}
	}
}

// Count returns the number of entities Join yields.
func (q *Query{{$n}}[{{$tp}}]) Count() int {
	n := 0
	for range q.Join() {
		n++
	}
	return n
}

func (q *Query{{$n}}[{{$tp}}]) fill(e Entity, row *Row{{$n}}[{{$tp}}]) bool {
	var ok bool
{{- range .Params}}
	if row.{{.Field}}, ok = q.{{.Var}}.fetch(e); !ok {
		return false
	}
{{- end}}
	return true
}
{{end}}`

func main() {
	out := flag.String("out", "query_generated.go", "output file")
	maxArity := flag.Int("max", len(fields), "highest query arity to generate")
	flag.Parse()

	if *maxArity < 1 || *maxArity > len(fields) {
		log.Fatalf("querygen: -max must be between 1 and %d", len(fields))
	}

	arities := make([]arity, 0, *maxArity)
	for n := 1; n <= *maxArity; n++ {
		a := arity{N: n}
		for i := 1; i <= n; i++ {
			a.Params = append(a.Params, param{
				Index: i,
				Type:  fmt.Sprintf("T%d", i),
				Field: string(fields[i-1]),
				Var:   fmt.Sprintf("m%d", i),
				Term:  fmt.Sprintf("t%d", i),
			})
		}
		arities = append(arities, a)
	}

	tmpl := template.Must(template.New("query").Parse(source))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("querygen: execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("querygen: format output: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("querygen: %v", err)
	}
}
