package main

var opts struct {
	Payload string `long:"payload" env:"PAYLOAD" choice:"none" choice:"hex" choice:"string" choice:"murmur3" default:"none" description:"how to print item payloads"`
	Limit   uint64 `long:"limit" env:"LIMIT" default:"0" description:"maximum number of items to print, 0 prints all"`
	Mmap    bool   `long:"mmap" env:"MMAP" description:"memory-map the data file"`
	Verbose bool   `long:"verbose" short:"v" env:"VERBOSE" description:"verbose mode"`

	Args struct {
		Path string `positional-arg-name:"record" required:"yes" description:"record directory"`
	} `positional-args:"yes"`
}
