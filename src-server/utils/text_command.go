package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// ParseTextCommand splits "<prefix>name args..." into a case folded name and
// its arguments. ok is false when content doesn't start with prefix.
func ParseTextCommand(prefix, content string) (name string, args []string, ok bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return cases.Fold().String(fields[0]), fields[1:], true
}
