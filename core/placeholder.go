package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Substitute replaces every literal {i} in msg with the string form of
// args[i]. A nil argument is rendered as "null". Indexes are applied in
// order, so a value that itself contains {j} with j > i is substituted again.
func Substitute(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}

	var ref strings.Builder
	for i, arg := range args {
		ref.Reset()
		ref.WriteByte('{')
		ref.WriteString(strconv.Itoa(i))
		ref.WriteByte('}')

		msg = strings.ReplaceAll(msg, ref.String(), argString(arg))
	}
	return msg
}

func argString(arg interface{}) string {
	if arg == nil {
		return "null"
	}
	return fmt.Sprint(arg)
}
