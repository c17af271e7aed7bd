package content

import "fmt"

// ReorderByID moves the item with the given id so it sits before beforeID, or
// at the end when beforeID is empty. Moving by stable id instead of positional
// index keeps admin reordering correct when the editor shows a filtered view.
func ReorderByID[T any](items []T, idOf func(T) string, id, beforeID string) ([]T, error) {
	src := -1
	for i, item := range items {
		if idOf(item) == id {
			src = i
			break
		}
	}
	if src < 0 {
		return nil, fmt.Errorf("item %s not found", id)
	}

	moved := items[src]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:src]...)
	rest = append(rest, items[src+1:]...)

	if beforeID == "" {
		return append(rest, moved), nil
	}

	dst := -1
	for i, item := range rest {
		if idOf(item) == beforeID {
			dst = i
			break
		}
	}
	if dst < 0 {
		return nil, fmt.Errorf("item %s not found", beforeID)
	}

	out := make([]T, 0, len(items))
	out = append(out, rest[:dst]...)
	out = append(out, moved)
	out = append(out, rest[dst:]...)
	return out, nil
}
