package inspect

import (
	"strings"

	"github.com/plus3/sparsecs/ecs"
)

// EntityInfo summarizes one live entity.
type EntityInfo struct {
	Entity     ecs.Entity
	Components []string
}

// Page is one page of a Browse result.
type Page struct {
	Entities []EntityInfo
	Index    int
	Total    int // entities matching the filter
	Pages    int
}

// Components lists the component type names of e in registration order.
func Components(storage *ecs.Storage, e ecs.Entity) []string {
	meta := storage.Meta()
	var names []string
	for slot := 0; slot < meta.Len(); slot++ {
		t := meta.Type(slot)
		if storage.HasComponent(e, t) {
			names = append(names, t.String())
		}
	}
	return names
}

// Browse lists live entities in index order. An entity matches filter when the
// name of one of its component types contains it, case insensitively; an empty
// filter matches every entity. perPage < 1 puts everything on one page.
func Browse(storage *ecs.Storage, filter string, page, perPage int) Page {
	filter = strings.ToLower(filter)

	var matches []EntityInfo
	for e := range storage.Entities() {
		info := EntityInfo{Entity: e, Components: Components(storage, e)}
		if filter == "" || matchesFilter(info, filter) {
			matches = append(matches, info)
		}
	}

	if perPage < 1 {
		perPage = max(len(matches), 1)
	}
	result := Page{
		Index: page,
		Total: len(matches),
		Pages: (len(matches) + perPage - 1) / perPage,
	}

	startIdx := page * perPage
	if page < 0 || startIdx >= len(matches) {
		return result
	}
	endIdx := min(startIdx+perPage, len(matches))
	result.Entities = matches[startIdx:endIdx]
	return result
}

func matchesFilter(info EntityInfo, filter string) bool {
	for _, name := range info.Components {
		if strings.Contains(strings.ToLower(name), filter) {
			return true
		}
	}
	return false
}
