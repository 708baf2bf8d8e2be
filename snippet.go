package opdoc

import "sort"

// Ensure SnippetTypes implements Classifier at compile time.
var _ Classifier = (*SnippetTypes)(nil)

// SnippetTypes is the inverted snippet type index: keyword to category.
type SnippetTypes struct {
	byKeyword map[string]string
}

// NewSnippetTypes inverts a category to members mapping.
//
// Categories are applied in sorted name order, so a keyword listed under
// several categories resolves to the last one in that order.
func NewSnippetTypes(categories map[string][]string) (*SnippetTypes, error) {
	names := make([]string, 0, len(categories))
	for name := range categories {
		if name == "" {
			return nil, Errorf(EINVALID, "snippet type name required")
		}
		names = append(names, name)
	}
	sort.Strings(names)

	byKeyword := make(map[string]string)
	for _, name := range names {
		for _, keyword := range categories[name] {
			byKeyword[keyword] = name
		}
	}
	return &SnippetTypes{byKeyword: byKeyword}, nil
}

// Classify returns the snippet type for keyword.
func (s *SnippetTypes) Classify(keyword string) (string, error) {
	snippetType, ok := s.byKeyword[keyword]
	if !ok {
		return "", Errorf(ENOTFOUND, "could not retrieve snippet type for instruction %q", keyword)
	}
	return snippetType, nil
}

// Len returns the number of keywords with a snippet type.
func (s *SnippetTypes) Len() int {
	return len(s.byKeyword)
}
