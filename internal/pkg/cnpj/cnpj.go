// Package cnpj validates and formats Brazilian company tax ids (CNPJ).
package cnpj

import "strings"

// Length is the number of digits of a CNPJ.
const Length = 14

// Digits returns s with every non-digit rune removed.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether s holds a CNPJ with correct check digits.
// Punctuation and spaces are ignored.
func Valid(s string) bool {
	digits := Digits(s)
	if len(digits) != Length || allEqual(digits) {
		return false
	}

	nums := make([]int, Length)
	for i, r := range digits {
		nums[i] = int(r - '0')
	}

	if checkDigit(nums[:12]) != nums[12] {
		return false
	}
	return checkDigit(nums[:13]) == nums[13]
}

// Format renders a 14-digit CNPJ as NN.NNN.NNN/NNNN-NN.
// Input that does not reduce to 14 digits is returned unchanged.
func Format(s string) string {
	d := Digits(s)
	if len(d) != Length {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// checkDigit weights the digits from right to left with 2..9, wrapping back to 2.
func checkDigit(nums []int) int {
	sum, weight := 0, 2
	for i := len(nums) - 1; i >= 0; i-- {
		sum += nums[i] * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}

	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func allEqual(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
