// Package knowledge holds the structured knowledge base of the school:
// rooms and their navigation routes, the staff directory, the course
// catalog, institutional contacts and the canned answer set. All data is
// embedded; the engine never needs external storage to answer from here.
package knowledge

// RoomKind classifies a room record.
type RoomKind string

const (
	KindLab      RoomKind = "laboratorio"
	KindFacility RoomKind = "instalacao"
	KindAdmin    RoomKind = "administrativo"
	KindCommon   RoomKind = "comum"
)

// Location places a room inside the campus.
type Location struct {
	Building  string
	Floor     string
	Room      string // Room number, empty when the space has none
	Reference string
}

// Navigation describes the walking route from the main entrance.
type Navigation struct {
	Steps      []string
	Landmarks  []string
	ExtraHints string
}

// Room is a physical space on campus: a lab, a classroom, an office or a
// shared facility.
type Room struct {
	ID          string
	Name        string
	Kind        RoomKind
	Description string
	Location    Location
	Navigation  Navigation
	Capacity    int    // 0 when unknown
	Hours       string // Opening hours, empty when not applicable

	// Keywords are normalized phrases that identify this room in user
	// messages. Longer phrases carry more weight during resolution.
	Keywords []string
	// Qualifiers are tokens unique to this room among rooms sharing the
	// same base keywords (e.g. the gender word of a bathroom).
	Qualifiers []string
}

// StaffMember is a person on the school staff.
type StaffMember struct {
	Name             string
	Email            string
	Role             string
	Hours            string
	Responsibilities []string
	Sector           string // Sector ID
	// NameVariants are normalized aliases (first name, surname, common
	// misspellings) that should resolve to this person.
	NameVariants []string
}

// Sector groups staff members by organizational unit.
type Sector struct {
	ID          string
	Name        string
	Description string
	Location    string
	Directions  string
	// Keywords are normalized phrases that identify the sector.
	Keywords []string
}

// Course is an entry of the course catalog.
type Course struct {
	Name        string
	Category    string // "tecnico", "superior", "aprendizagem", "qualificacao"
	Duration    string
	Modality    string
	Schedule    string
	Requirement string
	Price       string
	Description string
}

// Contact is a reachable service desk of the institution.
type Contact struct {
	ID    string
	Name  string
	Phone string
	Email string
	Hours string
}
