package object

import "strings"

// List holds an ordered sequence of objects. Element types need not match.
type List struct {
	items []Object
}

// NewList returns a *List holding the given items.
func NewList(items []Object) *List {
	return &List{items: items}
}

func (l *List) Type() Type {
	return LIST
}

func (l *List) Inspect() string {
	items := make([]string, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Inspect())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (l *List) Items() []Object {
	return l.items
}

// Len returns the number of items in the list.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Interface() interface{} {
	items := make([]interface{}, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Interface())
	}
	return items
}

func (l *List) String() string {
	return l.Inspect()
}

func (l *List) Equals(other Object) bool {
	otherList, ok := other.(*List)
	if !ok || len(l.items) != len(otherList.items) {
		return false
	}
	for i, item := range l.items {
		if !item.Equals(otherList.items[i]) {
			return false
		}
	}
	return true
}
