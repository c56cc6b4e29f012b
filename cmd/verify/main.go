package main

import (
	"fmt"
	"os"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/schedule"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Verification results
type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	fmt.Println("🔍 Cadu - Knowledge Base Consistency Verification Tool")
	fmt.Println("======================================================")

	store := knowledge.NewStore()
	sched := schedule.NewStore()

	results := []verifyResult{}
	results = append(results, verifyRooms(store)...)
	results = append(results, verifyStaff(store)...)
	results = append(results, verifyCourses(store)...)
	results = append(results, verifyContacts(store)...)
	results = append(results, verifySchedule(sched)...)

	fmt.Println("\n📊 Verification Results:")
	fmt.Println("========================")

	passedCount := 0
	failedCount := 0

	for _, result := range results {
		status := "❌"
		if result.passed {
			status = "✅"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("%s %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passedCount, failedCount)

	if failedCount > 0 {
		os.Exit(1)
	}
}

// verifyRooms checks the room records are complete and resolvable.
func verifyRooms(store *knowledge.Store) []verifyResult {
	results := []verifyResult{}

	rooms := store.Rooms()
	results = append(results, verifyResult{
		name:    "Room Records Present",
		passed:  len(rooms) >= 30,
		message: fmt.Sprintf("Expected at least 30, got %d", len(rooms)),
	})

	incomplete := []string{}
	for _, r := range rooms {
		if r.Name == "" || len(r.Navigation.Steps) == 0 || len(r.Keywords) == 0 {
			incomplete = append(incomplete, r.ID)
		}
	}
	results = append(results, verifyResult{
		name:    "Room Records Complete",
		passed:  len(incomplete) == 0,
		message: completeness(incomplete),
	})

	// Rooms with a number must resolve through the number index
	unresolved := []string{}
	for _, r := range rooms {
		if r.Location.Room == "" {
			continue
		}
		if _, ok := store.RoomByNumber(r.Location.Room); !ok {
			unresolved = append(unresolved, r.Location.Room)
		}
	}
	results = append(results, verifyResult{
		name:    "Room Number Index",
		passed:  len(unresolved) == 0,
		message: completeness(unresolved),
	})

	// Normalized keywords only; accented keywords never match
	accented := []string{}
	for _, r := range rooms {
		for _, kw := range r.Keywords {
			if kw != textnorm.Normalize(kw) {
				accented = append(accented, r.ID+":"+kw)
			}
		}
	}
	results = append(results, verifyResult{
		name:    "Room Keywords Normalized",
		passed:  len(accented) == 0,
		message: completeness(accented),
	})

	return results
}

// verifyStaff checks the staff directory and its sector references.
func verifyStaff(store *knowledge.Store) []verifyResult {
	results := []verifyResult{}

	staff := store.Staff()
	results = append(results, verifyResult{
		name:    "Staff Records Present",
		passed:  len(staff) >= 5,
		message: fmt.Sprintf("Expected at least 5, got %d", len(staff)),
	})

	danglingSectors := []string{}
	unresolvable := []string{}
	for _, s := range staff {
		if s.Sector != "" {
			if _, ok := store.SectorByID(s.Sector); ok {
				// Sector rooms live in the room table too
			} else {
				danglingSectors = append(danglingSectors, s.Name+"→"+s.Sector)
			}
		}
		resolved := false
		for _, v := range s.NameVariants {
			if m, ok := store.StaffByVariant(v); ok && m.Name == s.Name {
				resolved = true
				break
			}
		}
		if !resolved {
			unresolvable = append(unresolvable, s.Name)
		}
	}
	results = append(results, verifyResult{
		name:    "Staff Sector References",
		passed:  len(danglingSectors) == 0,
		message: completeness(danglingSectors),
	})
	results = append(results, verifyResult{
		name:    "Staff Name Variants Resolve",
		passed:  len(unresolvable) == 0,
		message: completeness(unresolvable),
	})

	return results
}

// verifyCourses checks every catalog category has entries.
func verifyCourses(store *knowledge.Store) []verifyResult {
	results := []verifyResult{}

	categories := []string{
		knowledge.CategoryTechnical,
		knowledge.CategoryHigher,
		knowledge.CategoryApprenticeship,
		knowledge.CategoryQualification,
	}
	for _, cat := range categories {
		courses := store.CoursesByCategory(cat)
		results = append(results, verifyResult{
			name:    "Course Category: " + cat,
			passed:  len(courses) > 0,
			message: fmt.Sprintf("%d courses", len(courses)),
		})
	}

	return results
}

// verifyContacts checks the service desks the intents depend on.
func verifyContacts(store *knowledge.Store) []verifyResult {
	results := []verifyResult{}

	required := []string{"secretaria", "coordenacao_cursos", "atendimento_empresas", "biblioteca"}
	for _, id := range required {
		c, ok := store.ContactByID(id)
		passed := ok && c.Phone != ""
		msg := "present with phone"
		if !passed {
			msg = "missing or incomplete"
		}
		results = append(results, verifyResult{
			name:    "Contact: " + id,
			passed:  passed,
			message: msg,
		})
	}

	return results
}

// verifySchedule checks the embedded timetable is loadable and indexed.
func verifySchedule(sched *schedule.Store) []verifyResult {
	results := []verifyResult{}

	_, ok := sched.Room("315")
	results = append(results, verifyResult{
		name:    "Timetable Room Index",
		passed:  ok,
		message: "sala 315 resolvable",
	})

	profs := sched.Professors()
	results = append(results, verifyResult{
		name:    "Timetable Professors",
		passed:  len(profs) > 0,
		message: fmt.Sprintf("%d professors indexed", len(profs)),
	})

	classes := sched.Classes()
	results = append(results, verifyResult{
		name:    "Timetable Classes",
		passed:  len(classes) > 0,
		message: fmt.Sprintf("%d classes indexed", len(classes)),
	})

	return results
}

func completeness(problems []string) string {
	if len(problems) == 0 {
		return "All records consistent"
	}
	return fmt.Sprintf("Problems: %v", problems)
}
