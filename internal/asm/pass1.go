package asm

import "math"

// pass1 builds the label -> line-number table. The line number is the
// single input-line index, counting instruction and .fill lines alike.
func pass1(lines []string) (map[string]int, error) {
	labels := make(map[string]int)
	for lineNumber, line := range lines {
		st := parseStatement(line)

		if st.opcode == ".fill" && isNumericOperand(st.args[0]) {
			v, _ := parseInt(st.args[0])
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, ErrFillOverflow
			}
		}

		if st.label == "" {
			continue
		}
		if !isValidLabel(st.label) {
			return nil, ErrInvalidLabel
		}
		if _, dup := labels[st.label]; dup {
			return nil, ErrDuplicateLabel
		}
		labels[st.label] = lineNumber
	}
	return labels, nil
}
