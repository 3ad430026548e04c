// Package browser provides a category-filtered view over a fixed item collection
// with a single detail target and a card cursor.
package browser

import "errors"

// AllCategory is the catch-all category that matches every item.
const AllCategory = "All"

// ErrUnknownCategory reports a category label outside the derived category list.
var ErrUnknownCategory = errors.New("unknown category")

// Entry describes one browsable item.
type Entry interface {
	EntryID() string
	EntryCategory() string
}

// DetailPolicy controls what happens to an open detail when the category changes.
type DetailPolicy int

// DetailPolicy values.
const (
	DetailPolicyClose DetailPolicy = iota
	DetailPolicyRetain
)

// String returns the config label for the policy.
func (p DetailPolicy) String() string {
	if p == DetailPolicyRetain {
		return "retain"
	}
	return "close"
}

// ParseDetailPolicy maps a config label onto a policy.
func ParseDetailPolicy(raw string) (DetailPolicy, bool) {
	switch raw {
	case "", "close":
		return DetailPolicyClose, true
	case "retain":
		return DetailPolicyRetain, true
	default:
		return DetailPolicyClose, false
	}
}

// Option configures a browser.
type Option func(*options)

// options holds browser construction settings.
type options struct {
	policy DetailPolicy
}

// WithDetailPolicy sets the detail policy applied on category changes.
func WithDetailPolicy(policy DetailPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// Browser holds the filter, detail, and cursor state over a fixed collection.
type Browser[T Entry] struct {
	items      []T
	categories []string
	active     string
	filtered   []T
	detailID   string
	detailOpen bool
	cursor     int
	policy     DetailPolicy
}

// New copies items and derives the category list in first-seen order.
func New[T Entry](items []T, opts ...Option) *Browser[T] {
	cfg := options{policy: DetailPolicyClose}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	owned := make([]T, len(items))
	copy(owned, items)

	categories := []string{AllCategory}
	seen := map[string]struct{}{AllCategory: {}}
	for _, item := range owned {
		tag := item.EntryCategory()
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		categories = append(categories, tag)
	}

	b := &Browser[T]{
		items:      owned,
		categories: categories,
		active:     AllCategory,
		policy:     cfg.policy,
	}
	b.filtered = b.filter(AllCategory)
	return b
}

// Len returns the size of the full collection.
func (b *Browser[T]) Len() int {
	return len(b.items)
}

// Items returns a copy of the full collection in original order.
func (b *Browser[T]) Items() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Categories returns a copy of the derived categories, sentinel first.
func (b *Browser[T]) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// ActiveCategory returns the selected category label.
func (b *Browser[T]) ActiveCategory() string {
	return b.active
}

// Policy returns the configured detail policy.
func (b *Browser[T]) Policy() DetailPolicy {
	return b.policy
}

// SelectCategory changes the active filter and applies the detail policy.
func (b *Browser[T]) SelectCategory(category string) error {
	if !b.hasCategory(category) {
		return ErrUnknownCategory
	}
	if category == b.active {
		return nil
	}
	b.active = category
	b.filtered = b.filter(category)
	b.cursor = 0
	if !b.detailOpen {
		return nil
	}
	switch b.policy {
	case DetailPolicyRetain:
		if idx := b.indexOf(b.detailID); idx >= 0 {
			b.cursor = idx
			return nil
		}
		b.CloseDetail()
	default:
		b.CloseDetail()
	}
	return nil
}

// NextCategory selects the category after the active one, wrapping.
func (b *Browser[T]) NextCategory() {
	b.stepCategory(1)
}

// PrevCategory selects the category before the active one, wrapping.
func (b *Browser[T]) PrevCategory() {
	b.stepCategory(-1)
}

// FilteredView returns a copy of the items matching the active category.
func (b *Browser[T]) FilteredView() []T {
	out := make([]T, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// OpenDetail opens the item at index in the filtered view.
func (b *Browser[T]) OpenDetail(index int) bool {
	if index < 0 || index >= len(b.filtered) {
		return false
	}
	b.detailID = b.filtered[index].EntryID()
	b.detailOpen = true
	b.cursor = index
	return true
}

// CloseDetail clears the detail target.
func (b *Browser[T]) CloseDetail() {
	b.detailOpen = false
	b.detailID = ""
}

// DetailOpen reports whether a detail target is set.
func (b *Browser[T]) DetailOpen() bool {
	_, ok := b.DetailIndex()
	return ok
}

// Detail returns the open item resolved against the current filtered view.
func (b *Browser[T]) Detail() (T, bool) {
	idx, ok := b.DetailIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return b.filtered[idx], true
}

// DetailIndex returns the filtered-view index of the open item.
func (b *Browser[T]) DetailIndex() (int, bool) {
	if !b.detailOpen {
		return 0, false
	}
	idx := b.indexOf(b.detailID)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// Cursor returns the focused card index in the filtered view.
func (b *Browser[T]) Cursor() int {
	return b.cursor
}

// MoveCursor moves the card cursor, clamped to the filtered view.
func (b *Browser[T]) MoveCursor(delta int) {
	if len(b.filtered) == 0 {
		b.cursor = 0
		return
	}
	next := b.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(b.filtered) {
		next = len(b.filtered) - 1
	}
	b.cursor = next
}

// CursorItem returns the focused item.
func (b *Browser[T]) CursorItem() (T, bool) {
	if b.cursor < 0 || b.cursor >= len(b.filtered) {
		var zero T
		return zero, false
	}
	return b.filtered[b.cursor], true
}

// stepCategory moves the active category by delta positions.
func (b *Browser[T]) stepCategory(delta int) {
	if len(b.categories) == 0 {
		return
	}
	current := 0
	for idx, category := range b.categories {
		if category == b.active {
			current = idx
			break
		}
	}
	n := len(b.categories)
	next := ((current+delta)%n + n) % n
	_ = b.SelectCategory(b.categories[next])
}

// filter computes the items matching category in original order.
func (b *Browser[T]) filter(category string) []T {
	if category == AllCategory {
		out := make([]T, len(b.items))
		copy(out, b.items)
		return out
	}
	out := make([]T, 0, len(b.items))
	for _, item := range b.items {
		if item.EntryCategory() == category {
			out = append(out, item)
		}
	}
	return out
}

// hasCategory reports whether category is one of the derived labels.
func (b *Browser[T]) hasCategory(category string) bool {
	for _, candidate := range b.categories {
		if candidate == category {
			return true
		}
	}
	return false
}

// indexOf returns the filtered-view index for id, or -1.
func (b *Browser[T]) indexOf(id string) int {
	for idx, item := range b.filtered {
		if item.EntryID() == id {
			return idx
		}
	}
	return -1
}
