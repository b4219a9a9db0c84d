package engine

import "github.com/hammamikhairi/sailconv/internal/domain"

var (
	successJingle = domain.Sequence{{Note: domain.NoteG6, Ticks: 10}, {Note: domain.NoteC7, Ticks: 10}}
	failureJingle = domain.Sequence{{Note: domain.NoteC7, Ticks: 10}, {Note: domain.NoteG6, Ticks: 10}}
)

// activationJingle is played every time the face comes on screen.
var activationJingle = func() domain.Sequence {
	verse := domain.Sequence{
		{Note: domain.NoteC5, Ticks: 15}, {Note: domain.NoteG5, Ticks: 15}, {Note: domain.NoteF5, Ticks: 15}, {Note: domain.NoteD5, Ticks: 8},
		{Note: domain.NoteA4, Ticks: 8}, {Note: domain.NoteC5, Ticks: 22}, {Note: domain.NoteG4, Ticks: 8}, {Note: domain.NoteG5, Ticks: 15},
		{Note: domain.NoteD5, Ticks: 15}, {Note: domain.NoteC5, Ticks: 30}, {Note: domain.NoteD5, Ticks: 30}, {Note: domain.NoteG5, Ticks: 15},
		{Note: domain.NoteG5, Ticks: 8}, {Note: domain.NoteG5, Ticks: 8}, {Note: domain.NoteG4, Ticks: 30},
	}
	chorus := domain.Sequence{
		{Note: domain.NoteG5, Ticks: 15}, {Note: domain.NoteE5, Ticks: 15}, {Note: domain.NoteC5, Ticks: 15}, {Note: domain.NoteG5, Ticks: 15},
		{Note: domain.NoteC5, Ticks: 15}, {Note: domain.NoteA4, Ticks: 15}, {Note: domain.NoteF5, Ticks: 15}, {Note: domain.NoteC5, Ticks: 15},
		{Note: domain.NoteC5, Ticks: 8}, {Note: domain.NoteB4, Ticks: 8}, {Note: domain.NoteC5, Ticks: 8}, {Note: domain.NoteB4, Ticks: 8},
		{Note: domain.NoteG5, Ticks: 22}, {Note: domain.NoteG5, Ticks: 8}, {Note: domain.NoteG4, Ticks: 30}, {Note: domain.NoteB4, Ticks: 30},
	}

	var seq domain.Sequence
	for _, part := range []domain.Sequence{verse, verse, chorus, chorus} {
		seq = append(seq, part...)
	}
	return seq
}()
