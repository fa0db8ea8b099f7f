package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const tagKey = "model"

// columnFromTag reads the `model:"..."` tag of f. Options are comma
// separated: "-", "key", "concurrency", "order=N" and "generated=OPTION".
func columnFromTag(f reflect.StructField) (Column, error) {
	var col Column

	tag, ok := f.Tag.Lookup(tagKey)
	if !ok {
		return col, nil
	}

	if strings.TrimSpace(tag) == "-" {
		col.Ignored = true
		return col, nil
	}

	for opt := range strings.SplitSeq(tag, ",") {
		name, value, hasValue := strings.Cut(strings.TrimSpace(opt), "=")

		switch name {
		case "":
			continue
		case "key":
			col.Key = true
		case "concurrency":
			col.Concurrency = true
		case "order":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil || n < 0 {
				return col, fmt.Errorf("%w: %s: bad order %q", ErrInvalidSchema, f.Name, value)
			}

			col.Order = &n
		case "generated":
			g, err := ParseGeneratedOption(value)
			if !hasValue || err != nil {
				return col, fmt.Errorf("%w: %s: bad generated option %q", ErrInvalidSchema, f.Name, value)
			}

			col.Generated = g
		default:
			return col, fmt.Errorf("%w: %s: unknown tag option %q", ErrInvalidSchema, f.Name, name)
		}
	}

	return col, nil
}
