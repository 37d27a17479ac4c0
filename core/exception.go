package core

import (
	"fmt"
	"strings"
	"unicode"
)

// RenderError renders err with its full detail. Errors built with
// github.com/pkg/errors print their wrap chain and stack trace under %+v;
// other errors fall back to their message. Trailing whitespace is trimmed.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimRightFunc(fmt.Sprintf("%+v", err), unicode.IsSpace)
}
