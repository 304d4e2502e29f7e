package dom

import "strings"

// Selector matching supports comma-separated compound simple selectors:
// tag, #id, .class, [attr], [attr="value"], and any concatenation of those
// ("article.card[data-flip-card]"). Combinators (descendant, child) are not
// supported; QuerySelectorAll walks the whole subtree instead.

type simpleSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

type attrSelector struct {
	name     string
	value    string
	hasValue bool
}

// Matches reports whether e matches the selector. Malformed selectors
// match nothing.
func (e *Element) Matches(selector string) bool {
	for _, alt := range strings.Split(selector, ",") {
		sel, ok := parseSimpleSelector(strings.TrimSpace(alt))
		if ok && sel.matches(e) {
			return true
		}
	}
	return false
}

// Closest returns the nearest element, starting at e and walking ancestors,
// that matches the selector, or nil.
func (e *Element) Closest(selector string) *Element {
	for node := e; node != nil; node = node.parent {
		if node.Matches(selector) {
			return node
		}
	}
	return nil
}

// QuerySelectorAll returns all descendants of e (excluding e itself) that
// match the selector, in document order.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(node *Element) {
		for _, c := range node.children {
			if c.Matches(selector) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

func (s *simpleSelector) matches(e *Element) bool {
	if s.tag != "" && s.tag != "*" && s.tag != e.tag {
		return false
	}
	if s.id != "" {
		if id, ok := e.attrs["id"]; !ok || id != s.id {
			return false
		}
	}
	for _, c := range s.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	for _, a := range s.attrs {
		v, ok := e.attrs[a.name]
		if !ok {
			return false
		}
		if a.hasValue && v != a.value {
			return false
		}
	}
	return true
}

func parseSimpleSelector(s string) (*simpleSelector, bool) {
	if s == "" {
		return nil, false
	}
	sel := &simpleSelector{}
	i := 0
	// Leading tag name or universal selector.
	for i < len(s) && s[i] != '.' && s[i] != '#' && s[i] != '[' {
		i++
	}
	sel.tag = s[:i]
	for i < len(s) {
		switch s[i] {
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '#' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return nil, false
			}
			sel.classes = append(sel.classes, s[i+1:j])
			i = j
		case '#':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '#' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return nil, false
			}
			sel.id = s[i+1 : j]
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, false
			}
			body := s[i+1 : i+j]
			attr := attrSelector{}
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				attr.name = body[:eq]
				attr.value = strings.Trim(body[eq+1:], `"'`)
				attr.hasValue = true
			} else {
				attr.name = body
			}
			if attr.name == "" {
				return nil, false
			}
			sel.attrs = append(sel.attrs, attr)
			i += j + 1
		default:
			return nil, false
		}
	}
	return sel, true
}
