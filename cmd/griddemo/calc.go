package main

import (
	"strconv"
	"strings"
)

type operation uint8

const (
	opNone operation = iota
	opAdd
	opSub
	opMul
	opDiv
)

var opSymbols = map[string]operation{"+": opAdd, "-": opSub, "*": opMul, "/": opDiv}

// maxDigits bounds the display while typing
const maxDigits = 10

// calculator is the state behind the demo keypad
type calculator struct {
	display  string
	current  float64
	previous float64
	op       operation
	fresh    bool // next digit starts a new number
}

func newCalculator() *calculator {
	c := &calculator{}
	c.clear()
	return c
}

// press applies one key label; false for labels it doesn't know
func (c *calculator) press(key string) bool {
	switch {
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		c.digit(key[0])
	case key == ".":
		c.decimal()
	case key == "C":
		c.clear()
	case key == "=":
		c.calculate()
	default:
		op, ok := opSymbols[key]
		if !ok {
			return false
		}
		c.setOp(op)
	}
	return true
}

func (c *calculator) digit(d byte) {
	switch {
	case c.fresh || c.display == "0":
		c.display = string(d)
		c.fresh = false
	case len(c.display) < maxDigits:
		c.display += string(d)
	}
	c.current, _ = strconv.ParseFloat(c.display, 64)
}

func (c *calculator) decimal() {
	if c.fresh {
		c.display = "0."
		c.fresh = false
	} else if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

func (c *calculator) clear() {
	*c = calculator{display: "0", fresh: true}
}

func (c *calculator) setOp(op operation) {
	if !c.fresh {
		c.calculate()
	}
	c.previous = c.current
	c.op = op
	c.fresh = true
}

func (c *calculator) calculate() {
	if c.op == opNone {
		return
	}
	var result float64
	switch c.op {
	case opAdd:
		result = c.previous + c.current
	case opSub:
		result = c.previous - c.current
	case opMul:
		result = c.previous * c.current
	case opDiv:
		// Division by zero shows 0
		if c.current != 0 {
			result = c.previous / c.current
		}
	}
	c.display = formatResult(result)
	c.current = result
	c.op = opNone
	c.fresh = true
}

// formatResult prints at most ten decimals without trailing zeros
func formatResult(v float64) string {
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
