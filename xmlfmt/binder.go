package xmlfmt

import (
	"strconv"

	"github.com/tinywasm/hwpconv/warn"
)

// This file holds the typed-element-binder value-grammar helpers:
// required-attribute and required-child checks that return a typed
// value or a precise error naming what was missing or malformed.

func requireAttr(e *Element, local string) (string, error) {
	v, ok := e.Attr(local)
	if !ok {
		return "", warn.InvariantViolationAt("missing attribute "+local, e.Local)
	}
	return v, nil
}

func requireChild(e *Element, ns, local string) (*Element, error) {
	c, ok := e.Child(ns, local)
	if !ok {
		return nil, warn.InvariantViolationAt("missing element "+local, e.Local)
	}
	return c, nil
}

// parseBool accepts "true|false|1|0".
func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0", "":
		return false, nil
	default:
		return false, warn.InvariantViolation("unexpected value " + s + " for boolean")
	}
}

func attrBool(e *Element, local string) (bool, error) {
	v, ok := e.Attr(local)
	if !ok {
		return false, nil
	}
	return parseBool(v)
}

func attrInt(e *Element, local string) (int32, error) {
	v, ok := e.Attr(local)
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, warn.InvariantViolation("unexpected value " + v + " for " + local)
	}
	return int32(n), nil
}

func requireAttrInt(e *Element, local string) (int32, error) {
	v, err := requireAttr(e, local)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, warn.InvariantViolation("unexpected value " + v + " for " + local)
	}
	return int32(n), nil
}

func attrStr(e *Element, local string) string {
	v, _ := e.Attr(local)
	return v
}

func setIntAttr(e *Element, local string, v int32) {
	e.SetAttr(local, strconv.FormatInt(int64(v), 10))
}

func setBoolAttr(e *Element, local string, v bool) {
	if v {
		e.SetAttr(local, "1")
	} else {
		e.SetAttr(local, "0")
	}
}
