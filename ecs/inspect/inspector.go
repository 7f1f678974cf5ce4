// Package inspect renders the contents of an ecs.Storage as text for debugging.
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/plus3/sparsecs/ecs"
)

// WriteEntity writes every component of e with its fields, one per line.
func WriteEntity(w io.Writer, storage *ecs.Storage, e ecs.Entity) error {
	bw := bufio.NewWriter(w)

	if !storage.Alive(e) {
		fmt.Fprintf(bw, "entity %v: not alive\n", e)
		return bw.Flush()
	}

	fmt.Fprintf(bw, "entity %v\n", e)
	meta := storage.Meta()
	for slot := 0; slot < meta.Len(); slot++ {
		compType := meta.Type(slot)
		component := storage.GetComponent(e, compType)
		if component == nil {
			continue
		}
		writeValue(bw, 1, compType.String(), reflect.ValueOf(component).Elem())
	}
	return bw.Flush()
}

// WritePage writes a Browse page followed by the components of each of its entities.
func WritePage(w io.Writer, storage *ecs.Storage, page Page) error {
	if _, err := fmt.Fprintf(w, "page %d/%d (%d entities)\n", page.Index+1, page.Pages, page.Total); err != nil {
		return err
	}
	for _, info := range page.Entities {
		if err := WriteEntity(w, storage, info.Entity); err != nil {
			return err
		}
	}
	return nil
}

func writeValue(w *bufio.Writer, depth int, name string, val reflect.Value) {
	indent := strings.Repeat("  ", depth)

	if !val.IsValid() {
		fmt.Fprintf(w, "%s%s: <invalid>\n", indent, name)
		return
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			fmt.Fprintf(w, "%s%s: nil\n", indent, name)
			return
		}
		writeValue(w, depth, name, val.Elem())

	case reflect.Struct:
		fields := fieldsOf(val.Type())
		if len(fields) == 0 {
			fmt.Fprintf(w, "%s%s: {}\n", indent, name)
			return
		}
		fmt.Fprintf(w, "%s%s:\n", indent, name)
		for _, f := range fields {
			writeValue(w, depth+1, f.name, val.FieldByIndex(f.index))
		}

	case reflect.Slice, reflect.Array:
		fmt.Fprintf(w, "%s%s: [%d items]\n", indent, name, val.Len())

	case reflect.Map:
		fmt.Fprintf(w, "%s%s: {%d entries}\n", indent, name, val.Len())

	case reflect.String:
		fmt.Fprintf(w, "%s%s: %q\n", indent, name, val.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(w, "%s%s: %d\n", indent, name, val.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(w, "%s%s: %d\n", indent, name, val.Uint())

	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(w, "%s%s: %g\n", indent, name, val.Float())

	case reflect.Bool:
		fmt.Fprintf(w, "%s%s: %t\n", indent, name, val.Bool())

	default:
		fmt.Fprintf(w, "%s%s: <%s>\n", indent, name, val.Type())
	}
}
