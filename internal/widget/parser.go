package widget

import (
	"fmt"
	"strings"
)

// ParseCSS parses a small CSS subset: ".class" or "#id" selectors with blocks of "key: value;".
// No combinators, no @rules. Blocks with other selectors are skipped. Later rules override earlier
// ones for the same property. An unclosed block is an error.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	s := stripCSSComments(content)
	for {
		open := strings.IndexByte(s, '{')
		if open == -1 {
			if strings.TrimSpace(s) != "" {
				return nil, fmt.Errorf("css: trailing text %q", strings.TrimSpace(s))
			}
			return sheet, nil
		}
		end := findMatchingBrace(s, open)
		if end == -1 {
			return nil, fmt.Errorf("css: unclosed block after %q", strings.TrimSpace(s[:open]))
		}
		selector := strings.TrimSpace(s[:open])
		if len(selector) >= 2 && (selector[0] == '.' || selector[0] == '#') {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector: selector,
				Props:    parseDeclarations(s[open+1 : end]),
			})
		}
		s = s[end+1:]
	}
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j == -1 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
