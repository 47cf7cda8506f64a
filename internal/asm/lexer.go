package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const maxLineLength = 1000

// readLines splits the input into lines. Every line must end in a newline,
// including the last one, or the file is rejected as "line too long" —
// a missing trailing newline looks identical to an overlong line to a
// fixed-size line buffer.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			if len(line) == 0 {
				break
			}
			return nil, ErrLineTooLong
		}
		if err != nil {
			return nil, err
		}
		if len(line) > maxLineLength {
			return nil, ErrLineTooLong
		}
		lines = append(lines, strings.TrimRight(line, "\r\n"))
	}
	return lines, nil
}

// parseStatement splits one source line into [label] opcode [arg0] [arg1]
// [arg2]. A label is present only when the line has no leading whitespace;
// an indented line's first field is always the opcode.
func parseStatement(line string) statement {
	var st statement
	fields := strings.Fields(line)
	idx := 0
	hasLeadingSpace := len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
	if !hasLeadingSpace && len(fields) > 0 {
		st.label = fields[0]
		idx = 1
	}
	rest := fields[idx:]
	if len(rest) > 0 {
		st.opcode = rest[0]
	}
	for i := 0; i < 3 && i+1 < len(rest); i++ {
		st.args[i] = rest[i+1]
	}
	return st
}

// isNumericOperand reports whether s is a signed decimal literal; a label
// can never look like this given the label grammar.
func isNumericOperand(s string) bool {
	_, ok := parseInt(s)
	return ok
}

func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
