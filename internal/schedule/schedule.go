// Package schedule holds the weekly class timetable and answers questions
// about rooms, professors and classes. Lookups tolerate accents, missing
// spaces and typos in professor names.
package schedule

import (
	"sort"
	"strings"

	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Canonical period and day order. Keys are the accented lowercase forms
// used by the timetable data.
var (
	Periods = []string{"manhã", "tarde", "noite"}
	Days    = []string{"segunda", "terça", "quarta", "quinta", "sexta", "sábado"}
)

// Lesson is one slot of the weekly timetable.
type Lesson struct {
	Subject   string
	Professor string
	Class     string
	Room      string
}

// Timetable maps period to day to the lessons in that slot.
type Timetable map[string]map[string][]Lesson

// Store indexes the timetable three ways: by room number, by professor
// and by class. The professor and class views are derived from the room
// tables, so the three views never disagree.
type Store struct {
	rooms      map[string]Timetable
	professors map[string]Timetable
	classes    map[string]Timetable
}

// NewStore builds the derived views over the embedded room timetables.
func NewStore() *Store {
	s := &Store{
		rooms:      make(map[string]Timetable, len(roomTimetables)),
		professors: make(map[string]Timetable),
		classes:    make(map[string]Timetable),
	}
	for room, tt := range roomTimetables {
		s.rooms[room] = tt
		for period, days := range tt {
			for day, lessons := range days {
				for _, l := range lessons {
					l.Room = room
					if l.Professor != "" {
						insert(s.professors, l.Professor, period, day, l)
					}
					if l.Class != "" {
						insert(s.classes, l.Class, period, day, l)
					}
				}
			}
		}
	}
	return s
}

func insert(view map[string]Timetable, key, period, day string, l Lesson) {
	tt, ok := view[key]
	if !ok {
		tt = make(Timetable)
		view[key] = tt
	}
	if tt[period] == nil {
		tt[period] = make(map[string][]Lesson)
	}
	tt[period][day] = append(tt[period][day], l)
}

// Room returns the timetable of a room number ("315").
func (s *Store) Room(num string) (Timetable, bool) {
	tt, ok := s.rooms[num]
	return tt, ok
}

// Professor returns the timetable of a professor by canonical name.
func (s *Store) Professor(name string) (Timetable, bool) {
	tt, ok := s.professors[name]
	return tt, ok
}

// Class returns the timetable of a class by canonical name.
func (s *Store) Class(name string) (Timetable, bool) {
	tt, ok := s.classes[name]
	return tt, ok
}

// Professors lists the canonical professor names in sorted order.
func (s *Store) Professors() []string {
	return sortedKeys(s.professors)
}

// Classes lists the canonical class names in sorted order.
func (s *Store) Classes() []string {
	return sortedKeys(s.classes)
}

func sortedKeys(view map[string]Timetable) []string {
	out := make([]string, 0, len(view))
	for k := range view {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FindClass resolves a class name mentioned in the normalized message.
// Class names match with or without spaces, hyphens and underscores.
func (s *Store) FindClass(norm string) (string, bool) {
	compact := compactName(norm)
	for _, name := range s.Classes() {
		cn := textnorm.Normalize(strings.NewReplacer("_", " ", "-", " ").Replace(name))
		if strings.Contains(norm, cn) || strings.Contains(compact, compactName(cn)) {
			return name, true
		}
	}
	return "", false
}

func compactName(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
