package utils

import "strings"

func OnlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks the length and both check digits of a CPF, ignoring punctuation.
func IsValidCPF(value string) bool {
	cpf := OnlyDigits(value)
	if len(cpf) != 11 {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	digits := make([]int, 11)
	for i, r := range cpf {
		digits[i] = int(r - '0')
	}

	for _, position := range []int{9, 10} {
		sum := 0
		for i := 0; i < position; i++ {
			sum += digits[i] * (position + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != digits[position] {
			return false
		}
	}
	return true
}

// IsValidPhone accepts Brazilian numbers with area code: 10 or 11 digits.
func IsValidPhone(value string) bool {
	digits := OnlyDigits(value)
	return len(digits) == 10 || len(digits) == 11
}
