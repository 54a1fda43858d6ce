package training

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Exercise field bounds, inclusive.
const (
	MaxSets   = 20
	MaxReps   = 100
	MaxWeight = 2000
	minName   = 2
)

// FieldError is a user-facing message attached to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects the field errors of a rejected form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Message returns the message for field, or "" if the field is valid.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ExerciseInput holds the raw text of the add-exercise form.
type ExerciseInput struct {
	Name   string
	Sets   string
	Reps   string
	Weight string
}

// Validate checks the form. Blank numeric fields are allowed.
func (in ExerciseInput) Validate() error {
	verr := &ValidationError{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		verr.add("name", "Exercise name is required")
	case utf8.RuneCountInString(name) < minName:
		verr.add("name", "Exercise name must be at least 2 characters")
	}
	if _, ok := parseBounded(in.Sets, MaxSets); !ok {
		verr.add("sets", "Sets must be between 0 and 20")
	}
	if _, ok := parseBounded(in.Reps, MaxReps); !ok {
		verr.add("reps", "Reps must be between 0 and 100")
	}
	if _, ok := parseBounded(in.Weight, MaxWeight); !ok {
		verr.add("weight", "Weight must be between 0 and 2000 lbs")
	}

	return verr.orNil()
}

// Build validates the form and returns the exercise it describes.
func (in ExerciseInput) Build(id string) (Exercise, error) {
	if err := in.Validate(); err != nil {
		return Exercise{}, err
	}
	sets, _ := parseBounded(in.Sets, MaxSets)
	reps, _ := parseBounded(in.Reps, MaxReps)
	weight, _ := parseBounded(in.Weight, MaxWeight)
	return Exercise{
		ID:     id,
		Name:   strings.TrimSpace(in.Name),
		Sets:   sets,
		Reps:   reps,
		Weight: weight,
	}, nil
}

// parseBounded parses an optional integer in [0, max]. Blank means 0.
func parseBounded(raw string, max int) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > max {
		return 0, false
	}
	return n, true
}

// ValidateExercise checks a stored exercise against the same bounds as the form.
func ValidateExercise(ex Exercise) error {
	return ExerciseInput{
		Name:   ex.Name,
		Sets:   strconv.Itoa(ex.Sets),
		Reps:   strconv.Itoa(ex.Reps),
		Weight: strconv.Itoa(ex.Weight),
	}.Validate()
}

// SessionInput holds the raw text of the session form.
type SessionInput struct {
	Date      string
	Time      string
	Tag       string
	Exercises []Exercise
}

// Validate checks that date, time and tag are present and the date is a real day.
func (in SessionInput) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(in.Date) == "" {
		verr.add("date", "Date is required")
	} else if _, err := ParseDate(in.Date); err != nil {
		verr.add("date", "Date must be in "+DateLayout+" format")
	}
	if strings.TrimSpace(in.Time) == "" {
		verr.add("time", "Time is required")
	}
	if strings.TrimSpace(in.Tag) == "" {
		verr.add("tag", "Tag is required")
	}
	for _, ex := range in.Exercises {
		if err := ValidateExercise(ex); err != nil {
			verr.add("exercises", ex.Name+": "+err.Error())
		}
	}

	return verr.orNil()
}

// Build validates the form and returns the session it describes with the given ID.
func (in SessionInput) Build(id string) (TrainingSession, error) {
	if err := in.Validate(); err != nil {
		return TrainingSession{}, err
	}
	date, _ := ParseDate(in.Date)
	sess := TrainingSession{
		ID:   id,
		Date: date,
		Time: strings.TrimSpace(in.Time),
		Tag:  strings.TrimSpace(in.Tag),
	}
	sess.Exercises = make([]Exercise, len(in.Exercises))
	copy(sess.Exercises, in.Exercises)
	return sess, nil
}

// InputOf returns the form contents for an existing session, used by edit.
func InputOf(s TrainingSession) SessionInput {
	return SessionInput{
		Date:      s.Date.String(),
		Time:      s.Time,
		Tag:       s.Tag,
		Exercises: s.Clone().Exercises,
	}
}
