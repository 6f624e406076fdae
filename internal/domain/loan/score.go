package loan

const (
	BaseScore = 50
	MaxScore  = 100

	smallLoanLimit = 100000
)

// Score is the advisory AI score of an application. It does not gate
// approval.
func Score(creditScore int, landSize, loanAmount float64) int {
	score := BaseScore

	switch {
	case creditScore > 700:
		score += 20
	case creditScore > 600:
		score += 10
	}

	switch {
	case landSize > 5:
		score += 15
	case landSize > 2:
		score += 10
	}

	if loanAmount < smallLoanLimit {
		score += 15
	}

	return min(score, MaxScore)
}
