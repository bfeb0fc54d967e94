package domain

// DeletionPlan 记录计算最大删除数的中间结果
type DeletionPlan struct {
	Length int
	// Residue is the digit sum modulo 3.
	Residue int
	// Counts holds how many digits fall into each residue class.
	Counts [3]int
	// Removed is how many non-zero-residue digits were dropped to bring the
	// digit sum back to a multiple of three.
	Removed int
	// Unreachable is set when no deletion can restore divisibility.
	Unreachable bool
	// Capped is set when every digit would have been removable and one had
	// to be kept.
	Capped    bool
	Deletions int
}

// MaxDeletions returns how many digits can be removed from digits, keeping
// at least one, so that the remainder is divisible by three.
func MaxDeletions(digits string) int {
	return PlanDeletions(digits).Deletions
}

// PlanDeletions computes MaxDeletions together with the breakdown that led
// to it. digits must be non-empty and contain only '0'-'9'.
func PlanDeletions(digits string) DeletionPlan {
	plan := DeletionPlan{Length: len(digits)}
	if plan.Length <= 1 {
		return plan
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		sum += d
		plan.Counts[d%3]++
	}
	plan.Residue = sum % 3

	if plan.Residue != 0 {
		// 删除一个同余数字，或两个互补余数的数字
		single, pair := plan.Residue, 3-plan.Residue
		switch {
		case plan.Counts[single] >= 1:
			plan.Removed = 1
		case plan.Counts[pair] >= 2:
			plan.Removed = 2
		default:
			plan.Unreachable = true
			return plan
		}
	}

	// Multiples of three never change the residue, so all of them go.
	plan.Deletions = plan.Removed + plan.Counts[0]
	if plan.Deletions == plan.Length {
		plan.Deletions = plan.Length - 1
		plan.Capped = true
	}
	return plan
}

// IsDigitString reports whether s is a non-empty run of ASCII digits.
func IsDigitString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
