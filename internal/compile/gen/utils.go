package gen

import "strings"

func write(sb *strings.Builder, s ...string) {
	for _, str := range s {
		sb.WriteString(str)
	}
}

// command joins the words of a single script line
func command(words ...string) string {
	return strings.Join(words, " ")
}
