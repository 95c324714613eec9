package truthtable

// Classification of a formula over all assignments of its variables.
type Classification string

const (
	Tautology     Classification = "Tautology"
	Contradiction Classification = "Contradiction"
	Contingent    Classification = "Contingent"
)

// Classify inspects the outcome of every row.
func Classify(outcomes []bool) Classification {
	trues := 0
	for _, v := range outcomes {
		if v {
			trues++
		}
	}
	switch trues {
	case len(outcomes):
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingent
	}
}
