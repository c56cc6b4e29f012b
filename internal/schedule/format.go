package schedule

import (
	"fmt"
	"strings"
)

// ValidityNote warns that the embedded timetable covers a fixed week.
const ValidityNote = "⚠️ Estes horários são válidos para a semana de 1 a 5 de dezembro de 2025."

// TimetableURL is the live school timetable system.
const TimetableURL = "https://senaisaocarlos.edupage.org/timetable/"

var dayLabels = map[string]string{
	"segunda": "Segunda-feira",
	"terça":   "Terça-feira",
	"quarta":  "Quarta-feira",
	"quinta":  "Quinta-feira",
	"sexta":   "Sexta-feira",
	"sábado":  "Sábado",
}

var periodLabels = map[string]string{
	"manhã": "Manhã",
	"tarde": "Tarde",
	"noite": "Noite",
}

// FormatRoom renders the timetable of one room. Empty periods and days
// are skipped entirely.
func FormatRoom(num string, tt Timetable) string {
	header := fmt.Sprintf("Horarios da Sala %s:", num)
	return format(header, tt, func(l Lesson) string {
		line := "    - " + orDefault(l.Subject, "Aula")
		if l.Professor != "" {
			line += " | Professor: " + l.Professor
		}
		if l.Class != "" {
			line += " | Turma: " + l.Class
		}
		return line
	})
}

// FormatProfessor renders the timetable of one professor.
func FormatProfessor(name string, tt Timetable) string {
	header := fmt.Sprintf("Horarios do Professor %s:", name)
	return format(header, tt, func(l Lesson) string {
		line := "    - " + orDefault(l.Subject, "Aula")
		if l.Class != "" {
			line += " | Turma: " + l.Class
		}
		if l.Room != "" {
			line += " | Sala: " + l.Room
		}
		return line
	})
}

// FormatClass renders the timetable of one class.
func FormatClass(name string, tt Timetable) string {
	header := fmt.Sprintf("Horarios da Turma %s:", name)
	return format(header, tt, func(l Lesson) string {
		line := "    - " + orDefault(l.Subject, "Aula")
		if l.Professor != "" {
			line += " | Professor: " + l.Professor
		}
		if l.Room != "" {
			line += " | Sala: " + l.Room
		}
		return line
	})
}

func format(header string, tt Timetable, line func(Lesson) string) string {
	var b strings.Builder
	wroteHeader := false
	for _, period := range Periods {
		days := tt[period]
		if len(days) == 0 {
			continue
		}
		hasLessons := false
		for _, day := range Days {
			if len(days[day]) > 0 {
				hasLessons = true
				break
			}
		}
		if !hasLessons {
			continue
		}
		if !wroteHeader {
			b.WriteString(header + "\n")
			b.WriteString(ValidityNote + "\n\n")
			wroteHeader = true
		}
		b.WriteString(periodLabels[period] + ":\n")
		for _, day := range Days {
			lessons := days[day]
			if len(lessons) == 0 {
				continue
			}
			b.WriteString("  " + dayLabels[day] + ":\n")
			for _, l := range lessons {
				b.WriteString(line(l) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
