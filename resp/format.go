package resp

import (
	"fmt"
	"strconv"
	"strings"
)

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Format renders node the way redis-cli prints replies on a terminal.
func Format(node Node) string {
	var b strings.Builder
	formatNode(&b, node, "")
	return b.String()
}

func formatNode(b *strings.Builder, node Node, prefix string) {
	switch n := node.(type) {
	case SimpleString:
		b.WriteString(n.Value)
	case Error:
		b.WriteString("(error) " + n.Message)
	case Integer:
		b.WriteString("(integer) " + strconv.FormatInt(n.Value, 10))
	case BlobString:
		b.WriteString(strconv.Quote(n.Value))
	case Array:
		if len(n.Elements) == 0 {
			b.WriteString("(empty array)")
			return
		}
		width := len(strconv.Itoa(len(n.Elements)))
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteString("\n" + prefix)
			}
			label := fmt.Sprintf("%*d) ", width, i+1)
			b.WriteString(label)
			formatNode(b, e, prefix+strings.Repeat(" ", len(label)))
		}
	default:
		b.WriteString("(nil)")
	}
}

// FormatRaw renders node without type decorations, one value per line,
// as redis-cli does when stdout is not a terminal.
func FormatRaw(node Node) string {
	var b strings.Builder
	formatRaw(&b, node)
	return strings.TrimSuffix(b.String(), "\n")
}

func formatRaw(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case SimpleString:
		b.WriteString(n.Value + "\n")
	case Error:
		b.WriteString(n.Message + "\n")
	case Integer:
		b.WriteString(strconv.FormatInt(n.Value, 10) + "\n")
	case BlobString:
		b.WriteString(n.Value + "\n")
	case Array:
		for _, e := range n.Elements {
			formatRaw(b, e)
		}
	default:
		b.WriteString("\n")
	}
}
