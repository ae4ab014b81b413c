package session

// Summary holds the statistics of a session.
type Summary struct {
	CorrectCount int
	TotalAsked   int
	Accuracy     float64
}

// Summary returns the statistics so far. Accuracy is 0 when nothing was asked.
func (s *Session) Summary() Summary {
	var accuracy float64
	if s.totalAsked > 0 {
		accuracy = float64(s.correctCount) / float64(s.totalAsked)
	}
	return Summary{
		CorrectCount: s.correctCount,
		TotalAsked:   s.totalAsked,
		Accuracy:     accuracy,
	}
}
