package resp

import (
	"strconv"
	"strings"
)

const CRLF string = "\r\n"

// Types equivalent to RESP version 2
const (
	TypeArray   byte = '*'
	TypeBlob    byte = '$'
	TypeSimple  byte = '+'
	TypeError   byte = '-'
	TypeInteger byte = ':'
)

// Node is one reply value produced by a shell command.
type Node interface {
}

type BlobString struct {
	Value string
}

type SimpleString struct {
	Value string
}

type Error struct {
	Message string
}

type Integer struct {
	Value int64
}

type Null struct {
}

// Array represents an array in RESP
type Array struct {
	Elements []Node
}

var OK = SimpleString{Value: "OK"}

// Errorf builds an error reply with the ERR prefix.
func Errorf(format string, args ...any) Error {
	return Error{Message: "ERR " + sprintf(format, args...)}
}

// Encode serializes node in the RESP2 wire format.
func Encode(node Node) []byte {
	var b strings.Builder
	encode(&b, node)
	return []byte(b.String())
}

func encode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case SimpleString:
		b.WriteByte(TypeSimple)
		b.WriteString(n.Value)
		b.WriteString(CRLF)
	case Error:
		b.WriteByte(TypeError)
		b.WriteString(n.Message)
		b.WriteString(CRLF)
	case Integer:
		b.WriteByte(TypeInteger)
		b.WriteString(strconv.FormatInt(n.Value, 10))
		b.WriteString(CRLF)
	case BlobString:
		b.WriteByte(TypeBlob)
		b.WriteString(strconv.Itoa(len(n.Value)))
		b.WriteString(CRLF)
		b.WriteString(n.Value)
		b.WriteString(CRLF)
	case Array:
		b.WriteByte(TypeArray)
		b.WriteString(strconv.Itoa(len(n.Elements)))
		b.WriteString(CRLF)
		for _, e := range n.Elements {
			encode(b, e)
		}
	default:
		// null bulk string
		b.WriteString("$-1" + CRLF)
	}
}
