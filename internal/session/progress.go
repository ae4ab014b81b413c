package session

// Progress is a snapshot of how far a session has come.
type Progress struct {
	Total     int // items the session started with
	Remaining int // items still in the working set
	Mastered  int // items removed at MasteredLevel
	Correct   int
	Asked     int

	// Completion is the sum of levels over Total*MasteredLevel, with
	// mastered items counted at MasteredLevel.
	Completion float64
}

// Progress returns the current progress. Before Start everything is zero
// except Total.
func (s *Session) Progress() Progress {
	p := Progress{
		Total:   len(s.candidates),
		Correct: s.correctCount,
		Asked:   s.totalAsked,
	}
	if s.phase == PhaseNotStarted {
		return p
	}

	p.Remaining = len(s.working)
	p.Mastered = p.Total - p.Remaining

	points := p.Mastered * MasteredLevel
	for _, e := range s.working {
		points += e.level
	}
	if p.Total > 0 {
		p.Completion = float64(points) / float64(p.Total*MasteredLevel)
	}
	return p
}

// Level returns the level of the current item, or -1 when none is current.
func (s *Session) Level() int {
	if s.current < 0 {
		return -1
	}
	return s.working[s.current].level
}
