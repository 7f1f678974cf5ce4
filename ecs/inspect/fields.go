package inspect

import (
	"reflect"
	"sync"
)

// field is one printable struct field: its name and its index path, which
// reaches through embedded structs so promoted fields print flat.
type field struct {
	name  string
	index []int
}

// layouts caches the printable fields per struct type.
var layouts sync.Map // reflect.Type -> []field

// fieldsOf returns the exported fields of struct type t in declaration order.
// Exported fields of embedded structs are listed in place of the embedding field.
func fieldsOf(t reflect.Type) []field {
	if cached, ok := layouts.Load(t); ok {
		return cached.([]field)
	}
	fields, _ := layouts.LoadOrStore(t, collectFields(t, nil))
	return fields.([]field)
}

func collectFields(t reflect.Type, prefix []int) []field {
	var fields []field
	for _, sf := range reflect.VisibleFields(t) {
		if len(sf.Index) != 1 {
			// promoted fields are reached through their embedding field below
			continue
		}
		path := append(append([]int(nil), prefix...), sf.Index[0])
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, collectFields(sf.Type, path)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, field{name: sf.Name, index: path})
	}
	return fields
}
