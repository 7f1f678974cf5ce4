package ecs

// Schedule decides the order systems run in.
type Schedule interface {
	// ForEach calls f for each system until f returns false.
	ForEach(f func(System) bool)
	Len() int
}

// SequentialSchedule runs systems one after another in insertion order.
type SequentialSchedule struct {
	systems []System
}

// NewSequentialSchedule creates a schedule with the given systems.
func NewSequentialSchedule(systems ...System) *SequentialSchedule {
	return &SequentialSchedule{systems: append([]System(nil), systems...)}
}

// Add appends a system to the schedule.
func (s *SequentialSchedule) Add(system System) {
	s.systems = append(s.systems, system)
}

func (s *SequentialSchedule) ForEach(f func(System) bool) {
	for _, system := range s.systems {
		if !f(system) {
			return
		}
	}
}

func (s *SequentialSchedule) Len() int {
	return len(s.systems)
}
