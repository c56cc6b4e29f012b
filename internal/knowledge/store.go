package knowledge

import (
	"fmt"
	"strings"
)

// Store provides indexed access to the embedded knowledge base. Iteration
// order over rooms, staff, courses and contacts is the declaration order
// of the data tables, which keeps resolution deterministic.
type Store struct {
	rooms      []Room
	roomByID   map[string]int
	roomByNum  map[string]int
	staff      []StaffMember
	sectors    []Sector
	sectorByID map[string]int
	courses    []Course
	contacts   []Contact
}

// NewStore builds the indexes over the embedded data.
func NewStore() *Store {
	s := &Store{
		rooms:      rooms,
		staff:      staff,
		sectors:    sectors,
		courses:    courses,
		contacts:   contacts,
		roomByID:   make(map[string]int, len(rooms)),
		roomByNum:  make(map[string]int, len(rooms)),
		sectorByID: make(map[string]int, len(sectors)),
	}
	for i, r := range rooms {
		s.roomByID[r.ID] = i
		if num := r.Location.Room; num != "" && num != "-" {
			if _, exists := s.roomByNum[num]; !exists {
				s.roomByNum[num] = i
			}
		}
	}
	for i, sec := range sectors {
		s.sectorByID[sec.ID] = i
	}
	return s
}

// Rooms returns all rooms in declaration order.
func (s *Store) Rooms() []Room {
	return s.rooms
}

// RoomByID looks a room up by its identifier.
func (s *Store) RoomByID(id string) (Room, bool) {
	if i, ok := s.roomByID[id]; ok {
		return s.rooms[i], true
	}
	return Room{}, false
}

// RoomByNumber looks a room up by its room number ("315", "214", ...).
func (s *Store) RoomByNumber(num string) (Room, bool) {
	if i, ok := s.roomByNum[num]; ok {
		return s.rooms[i], true
	}
	return Room{}, false
}

// Staff returns all staff members in declaration order.
func (s *Store) Staff() []StaffMember {
	return s.staff
}

// StaffByVariant finds a staff member by a normalized name variant.
func (s *Store) StaffByVariant(variant string) (StaffMember, bool) {
	for _, m := range s.staff {
		for _, v := range m.NameVariants {
			if v == variant {
				return m, true
			}
		}
	}
	return StaffMember{}, false
}

// StaffByRole finds the first staff member whose role matches a role
// keyword contained in the normalized query. Keywords are checked in
// declaration order, so the result is stable for queries naming more
// than one role.
func (s *Store) StaffByRole(query string) (StaffMember, bool) {
	for _, rk := range roleKeywords {
		if !strings.Contains(query, rk.keyword) {
			continue
		}
		for _, m := range s.staff {
			if m.Role == rk.role {
				return m, true
			}
		}
	}
	return StaffMember{}, false
}

// Sectors returns all sectors in declaration order.
func (s *Store) Sectors() []Sector {
	return s.sectors
}

// SectorByID looks a sector up by its identifier.
func (s *Store) SectorByID(id string) (Sector, bool) {
	if i, ok := s.sectorByID[id]; ok {
		return s.sectors[i], true
	}
	return Sector{}, false
}

// Courses returns the full catalog.
func (s *Store) Courses() []Course {
	return s.courses
}

// CoursesByCategory filters the catalog by category.
func (s *Store) CoursesByCategory(category string) []Course {
	var out []Course
	for _, c := range s.courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Contacts returns all service desk contacts.
func (s *Store) Contacts() []Contact {
	return s.contacts
}

// ContactByID looks a contact up by its identifier.
func (s *Store) ContactByID(id string) (Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Snippets renders the knowledge base as short standalone text fragments.
// The delegate ranks these against the user question to build a bounded
// context prompt.
func (s *Store) Snippets() []string {
	out := make([]string, 0, len(s.rooms)+len(s.staff)+len(s.courses)+4)
	for _, r := range s.rooms {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s. Local: %s, %s.", r.Name, r.Description, r.Location.Building, r.Location.Floor)
		if r.Location.Room != "" && r.Location.Room != "-" {
			fmt.Fprintf(&b, " Sala %s.", r.Location.Room)
		}
		fmt.Fprintf(&b, " Como chegar: %s.", strings.Join(r.Navigation.Steps, "; "))
		if r.Hours != "" {
			fmt.Fprintf(&b, " Horário: %s.", r.Hours)
		}
		out = append(out, b.String())
	}
	for _, m := range s.staff {
		sector := m.Sector
		if sec, ok := s.SectorByID(m.Sector); ok {
			sector = sec.Name
		}
		out = append(out, fmt.Sprintf("%s (%s, %s). Email: %s. Horário: %s.", m.Name, m.Role, sector, m.Email, m.Hours))
	}
	for _, c := range s.courses {
		out = append(out, fmt.Sprintf("Curso: %s (%s). Duração: %s. Modalidade: %s. Valor: %s. %s", c.Name, c.Category, c.Duration, c.Modality, c.Price, c.Description))
	}
	out = append(out,
		fmt.Sprintf("Endereço: %s. Telefone: %s. Email: %s. Site: %s.", Address, Phone, Email, Website),
		fmt.Sprintf("Horário de funcionamento: %s.", OpeningHours),
		fmt.Sprintf("Horário da biblioteca: %s.", LibraryHours),
		ApprenticeshipNote,
	)
	return out
}
