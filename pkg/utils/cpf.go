package utils

import "strings"

// ValidCPF checks a Brazilian CPF number, with or without punctuation.
// Both verification digits must match and repeated-digit sequences
// (e.g. 111.111.111-11) are rejected.
func ValidCPF(cpf string) bool {
	var digits []int
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		} else if !strings.ContainsRune(".- ", r) {
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) &&
		digits[10] == cpfCheckDigit(digits[:10])
}

func cpfCheckDigit(ds []int) int {
	w := len(ds) + 1
	sum := 0
	for i, d := range ds {
		sum += d * (w - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}
