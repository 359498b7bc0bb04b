// Package tasks holds the focus checklist.
package tasks

import "github.com/google/uuid"

// Item is a single checklist entry.
type Item struct {
	ID        string
	Label     string
	Completed bool
}

// List is an ordered checklist. Operations that name an index outside the
// list do nothing; an empty selection is not an error.
type List struct {
	items []Item
}

// NewList creates an empty checklist.
func NewList() *List {
	return &List{}
}

// Add appends an incomplete item and returns its id.
func (list *List) Add(label string) string {
	item := Item{
		ID:    uuid.NewString(),
		Label: label,
	}
	list.items = append(list.items, item)
	return item.ID
}

// Edit replaces the label of the item at index.
func (list *List) Edit(index int, label string) {
	if !list.valid(index) {
		return
	}
	list.items[index].Label = label
}

// Delete removes the item at index.
func (list *List) Delete(index int) {
	if !list.valid(index) {
		return
	}
	list.items = append(list.items[:index], list.items[index+1:]...)
}

// SetCompleted marks the item at index done or not done.
func (list *List) SetCompleted(index int, completed bool) {
	if !list.valid(index) {
		return
	}
	list.items[index].Completed = completed
}

// Toggle flips the completion mark of the item at index.
func (list *List) Toggle(index int) {
	if !list.valid(index) {
		return
	}
	list.items[index].Completed = !list.items[index].Completed
}

// Get returns the item at index.
func (list *List) Get(index int) (Item, bool) {
	if !list.valid(index) {
		return Item{}, false
	}
	return list.items[index], true
}

// Len returns the number of items.
func (list *List) Len() int {
	return len(list.items)
}

// List returns a copy of the items in order.
func (list *List) List() []Item {
	return append([]Item(nil), list.items...)
}

func (list *List) valid(index int) bool {
	return index >= 0 && index < len(list.items)
}
