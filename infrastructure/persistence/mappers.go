package persistence

import "github.com/helixml/almanac/domain/puzzle"

// InputMapper maps between puzzle.Input and InputModel.
type InputMapper struct{}

// ToDomain converts an InputModel to a puzzle.Input.
func (InputMapper) ToDomain(m InputModel) puzzle.Input {
	return puzzle.ReconstructInput(m.Year, m.Day, m.Content, m.FetchedAt)
}

// ToModel converts a puzzle.Input to an InputModel.
func (InputMapper) ToModel(i puzzle.Input) InputModel {
	return InputModel{
		Year:      i.Year(),
		Day:       i.Day(),
		Content:   i.Content(),
		FetchedAt: i.FetchedAt(),
	}
}
