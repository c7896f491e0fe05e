package simulation

// addToLog keeps the most recent maxLogSize assignments. Callers hold mu.
func (s *Simulation) addToLog(a Assignment) {
	s.AssignmentLog = append(s.AssignmentLog, a)

	if len(s.AssignmentLog) > s.maxLogSize {
		s.AssignmentLog = s.AssignmentLog[len(s.AssignmentLog)-s.maxLogSize:]
	}
}

// Log returns a copy of the retained assignments, oldest first.
func (s *Simulation) Log() []Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Assignment, len(s.AssignmentLog))
	copy(out, s.AssignmentLog)
	return out
}

func (s *Simulation) SetMaxLogSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.maxLogSize = n
	if len(s.AssignmentLog) > n {
		s.AssignmentLog = s.AssignmentLog[len(s.AssignmentLog)-n:]
	}
}
