package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/collage"
)

// operation is a single tile transform applied after the collage is made.
type operation struct {
	kind    string
	channel string
	name    string
	col     int
	row     int
}

func parseInts(s ...string) ([]int, error) {
	n := make([]int, len(s))
	for i := range s {
		var err error
		if n[i], err = strconv.Atoi(s[i]); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// parseOperation parses one of:
//
//	colorize:CHANNEL:COL:ROW
//	grayscale:COL:ROW
//	replace:COL:ROW:NAME
func parseOperation(s string) (operation, error) {
	kind, rest, _ := strings.Cut(s, ":")

	var (
		op    = operation{kind: kind}
		parts []string
	)
	switch kind {
	case "colorize":
		if parts = strings.Split(rest, ":"); len(parts) != 3 {
			return operation{}, fmt.Errorf("bad operation %q, want colorize:CHANNEL:COL:ROW", s)
		}
		op.channel, parts = parts[0], parts[1:]
	case "grayscale":
		if parts = strings.Split(rest, ":"); len(parts) != 2 {
			return operation{}, fmt.Errorf("bad operation %q, want grayscale:COL:ROW", s)
		}
	case "replace":
		// The name goes last as it may contain colons
		if parts = strings.SplitN(rest, ":", 3); len(parts) != 3 || parts[2] == "" {
			return operation{}, fmt.Errorf("bad operation %q, want replace:COL:ROW:NAME", s)
		}
		op.name, parts = parts[2], parts[:2]
	default:
		return operation{}, fmt.Errorf("unknown operation %q", kind)
	}

	n, err := parseInts(parts...)
	if err != nil {
		return operation{}, fmt.Errorf("bad operation %q: %w", s, err)
	}
	op.col, op.row = n[0], n[1]

	return op, nil
}

func (op operation) apply(c *collage.Collage) error {
	switch op.kind {
	case "colorize":
		return c.ColorizeTileNamed(op.channel, op.col, op.row)
	case "grayscale":
		return c.GrayscaleTile(op.col, op.row)
	case "replace":
		return c.ReplaceTile(op.name, op.col, op.row)
	}
	return fmt.Errorf("unknown operation %q", op.kind)
}
