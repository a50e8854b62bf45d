package config // CLI configuration file

import (
	"fmt"
	"strconv"
	"strings"
)

// Tool + "key=value" params to allow specific callings
type Options struct {
	Tool   string
	Params map[string]string
}

func ParseArgs(args []string) Options {
	opts := Options{Params: make(map[string]string)}
	if len(args) == 0 {
		return opts
	}
	opts.Tool = args[0]
	for _, arg := range args[1:] {
		kv := splitOption(arg)
		opts.Params[kv[0]] = kv[1]
	}
	return opts
}

// ParseParams is ParseArgs for callers that have already consumed the tool name
func ParseParams(tool string, args []string) Options {
	return ParseArgs(append([]string{tool}, args...))
}

// String returns the raw value for key, or def when the key is absent
func (o Options) String(key, def string) string {
	if v, ok := o.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// Int parses key as a base-10 integer
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o.Params[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: expected integer, got %q", key, v)
	}
	return n, nil
}

func (o Options) Uint64(key string, def uint64) (uint64, error) {
	v, ok := o.Params[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: expected unsigned integer, got %q", key, v)
	}
	return n, nil
}

// Bool treats a bare key (no "=") as true
func (o Options) Bool(key string) bool {
	v, ok := o.Params[key]
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "", "1", "t", "true", "yes", "y":
		return true
	}
	return false
}

// splitOption breaks "key=value" at the first "="
func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = arg[:i]
			kv[1] = arg[i+1:]
			return kv
		}
	}
	kv[0] = arg
	kv[1] = ""
	return kv
}
