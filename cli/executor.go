package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fzft/go-hashset/hashset"
	"github.com/fzft/go-hashset/resp"
)

// Executor runs shell commands against one set.
type Executor interface {
	Exec(argv []string) resp.Node
	Type() string
	Commands() []string
}

// shell binds a set to the codec that turns command words into keys.
type shell[K any] struct {
	set   *hashset.HashSet[K]
	parse func(string) (K, error)
	reply func(K) resp.Node
}

// NewExecutor returns an executor over a fresh set of the given kind.
func NewExecutor(kind hashset.Kind, opts ...hashset.Option) (Executor, error) {
	switch kind {
	case hashset.KindString:
		return &shell[string]{
			set:   hashset.NewString(opts...),
			parse: func(s string) (string, error) { return s, nil },
			reply: func(k string) resp.Node { return resp.BlobString{Value: k} },
		}, nil
	case hashset.KindInteger:
		return &shell[int64]{
			set:   hashset.NewInteger(opts...),
			parse: func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
			reply: func(k int64) resp.Node { return resp.Integer{Value: k} },
		}, nil
	default:
		return nil, fmt.Errorf("new executor: %w: %s", hashset.ErrUnknownSetType, kind)
	}
}

func (sh *shell[K]) Type() string {
	return sh.set.Type()
}

func (sh *shell[K]) Commands() []string {
	names := make([]string, 0, len(commandTable))
	for _, c := range commandTable {
		names = append(names, c.name)
	}
	return names
}

func (sh *shell[K]) keys(args []string) ([]K, bool) {
	keys := make([]K, 0, len(args))
	for _, a := range args {
		k, err := sh.parse(a)
		if err != nil {
			return nil, false
		}
		keys = append(keys, k)
	}
	return keys, true
}

func (sh *shell[K]) array(keys []K) resp.Array {
	elems := make([]resp.Node, len(keys))
	for i, k := range keys {
		elems[i] = sh.reply(k)
	}
	return resp.Array{Elements: elems}
}

func boolReply(b bool) resp.Integer {
	if b {
		return resp.Integer{Value: 1}
	}
	return resp.Integer{Value: 0}
}

func (sh *shell[K]) Exec(argv []string) resp.Node {
	if len(argv) == 0 {
		return resp.Errorf("empty command")
	}
	cmd, ok := lookupCommand(strings.ToUpper(argv[0]))
	if !ok {
		return resp.Errorf("unknown command '%s'", argv[0])
	}
	args := argv[1:]
	if !cmd.arityOK(len(args)) {
		return resp.Errorf("wrong number of arguments for '%s' command", strings.ToLower(cmd.name))
	}

	keys, ok := sh.keys(args)
	if !ok {
		return resp.Errorf("Invalid key type provided")
	}

	switch cmd.name {
	case "ADD":
		var n int64
		for _, k := range keys {
			if sh.set.Add(k) {
				n++
			}
		}
		return resp.Integer{Value: n}
	case "REMOVE":
		var n int64
		for _, k := range keys {
			if sh.set.Remove(k) {
				n++
			}
		}
		return resp.Integer{Value: n}
	case "CONTAINS":
		return boolReply(sh.set.Contains(keys[0]))
	case "COUNT":
		return resp.Integer{Value: int64(sh.set.Count(keys[0]))}
	case "SIZE":
		return resp.Integer{Value: int64(sh.set.Len())}
	case "EMPTY":
		return boolReply(sh.set.Empty())
	case "CLEAR":
		sh.set.Clear()
		return resp.OK
	case "KEYS":
		return sh.array(sh.set.Keys())
	case "BUCKETS":
		buckets := sh.set.Buckets()
		elems := make([]resp.Node, len(buckets))
		for i, b := range buckets {
			elems[i] = sh.array(b)
		}
		return resp.Array{Elements: elems}
	case "ITER":
		var all []K
		for k := range sh.set.All() {
			all = append(all, k)
		}
		return sh.array(all)
	case "TYPE":
		return resp.SimpleString{Value: sh.set.Type()}
	case "CAPACITY":
		return resp.Integer{Value: int64(sh.set.Capacity())}
	default:
		elems := make([]resp.Node, len(commandTable))
		for i, c := range commandTable {
			elems[i] = resp.SimpleString{Value: c.usage()}
		}
		return resp.Array{Elements: elems}
	}
}
