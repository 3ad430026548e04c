package domain

import "strings"

// Link represents one outbound anchor (repository, profile, email, phone, document).
type Link struct {
	Label string
	URL   string
}

// Field represents one labelled value shown in a detail view.
type Field struct {
	Key   string
	Value string
}

// NewLink constructs a trimmed link and rejects empty labels or targets.
func NewLink(label, url string) (Link, error) {
	label = strings.TrimSpace(label)
	url = strings.TrimSpace(url)
	if label == "" || url == "" {
		return Link{}, ErrInvalidLink
	}
	return Link{Label: label, URL: url}, nil
}

// IsPlaceholder reports whether the link points nowhere yet ("#" or empty).
func (l Link) IsPlaceholder() bool {
	url := strings.TrimSpace(l.URL)
	return url == "" || url == "#"
}

// normalizeLinks trims links and drops entries without a label or target.
func normalizeLinks(in []Link) []Link {
	out := make([]Link, 0, len(in))
	for _, link := range in {
		normalized, err := NewLink(link.Label, link.URL)
		if err != nil {
			continue
		}
		out = append(out, normalized)
	}
	return out
}

// normalizeFields trims fields and drops entries without a key.
func normalizeFields(in []Field) []Field {
	out := make([]Field, 0, len(in))
	for _, field := range in {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}
		out = append(out, Field{Key: key, Value: strings.TrimSpace(field.Value)})
	}
	return out
}

// normalizeList trims values and drops blanks while keeping order.
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, value := range in {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}
