package training

// Exercise is one movement within a session.
type Exercise struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   int    `json:"reps"`
	Weight int    `json:"weight"` // pounds
}

// Volume returns sets × reps × weight.
func (e Exercise) Volume() int {
	return e.Sets * e.Reps * e.Weight
}

// TrainingSession is a single recorded workout.
type TrainingSession struct {
	ID        string     `json:"id"`
	Date      Date       `json:"date"`
	Time      string     `json:"time"`
	Tag       string     `json:"tag"`
	Exercises []Exercise `json:"exercises"`
}

// Clone returns a deep copy. The exercise slice is never shared between copies.
func (s TrainingSession) Clone() TrainingSession {
	out := s
	out.Exercises = make([]Exercise, len(s.Exercises))
	copy(out.Exercises, s.Exercises)
	return out
}

// FindExercise returns the index of the exercise with the given ID, or -1.
func (s TrainingSession) FindExercise(id string) int {
	for i, ex := range s.Exercises {
		if ex.ID == id {
			return i
		}
	}
	return -1
}

// Volume sums the volume of all exercises in the session.
func (s TrainingSession) Volume() int {
	total := 0
	for _, ex := range s.Exercises {
		total += ex.Volume()
	}
	return total
}
