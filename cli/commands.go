package cli

// commandDocs documentation info used for the HELP command.
type commandDocs struct {
	name    string
	params  string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
}

var commandTable = []commandDocs{
	{name: "ADD", params: "key [key ...]", summary: "Add keys, returns how many were new", minArgs: 1, maxArgs: -1},
	{name: "REMOVE", params: "key [key ...]", summary: "Remove keys, returns how many were present", minArgs: 1, maxArgs: -1},
	{name: "CONTAINS", params: "key", summary: "1 if the key is present, 0 otherwise", minArgs: 1, maxArgs: 1},
	{name: "COUNT", params: "key", summary: "Presence count of the key (0 or 1)", minArgs: 1, maxArgs: 1},
	{name: "SIZE", summary: "Number of keys", maxArgs: 0},
	{name: "EMPTY", summary: "1 if the set holds no keys", maxArgs: 0},
	{name: "CLEAR", summary: "Remove every key", maxArgs: 0},
	{name: "KEYS", summary: "All keys, most recently added first", maxArgs: 0},
	{name: "BUCKETS", summary: "Bucket layout, one array per slot", maxArgs: 0},
	{name: "ITER", summary: "All keys in iteration order", maxArgs: 0},
	{name: "TYPE", summary: "Type tag of the set", maxArgs: 0},
	{name: "CAPACITY", summary: "Number of buckets", maxArgs: 0},
	{name: "HELP", summary: "Show this help", maxArgs: 0},
}

func lookupCommand(name string) (commandDocs, bool) {
	for _, c := range commandTable {
		if c.name == name {
			return c, true
		}
	}
	return commandDocs{}, false
}

func (c commandDocs) arityOK(argc int) bool {
	if argc < c.minArgs {
		return false
	}
	return c.maxArgs < 0 || argc <= c.maxArgs
}

func (c commandDocs) usage() string {
	if c.params == "" {
		return c.name + " - " + c.summary
	}
	return c.name + " " + c.params + " - " + c.summary
}
