package resolve

import (
	"fmt"
	"strings"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// sectorKeywords is checked in order; queries naming several sectors
// always land on the first one listed.
var sectorKeywords = []struct {
	keyword  string
	sectorID string
}{
	{"apoio", "setor_apoio"},
	{"direcao", "direcao"},
	{"coordenacao", "coordenacao_pedagogica"},
	{"pedagogica", "coordenacao_pedagogica"},
	{"orientacao", "orientacao"},
}

// staffAnswer resolves a question about people: by name variant first,
// then by role, then by sector, then a directory listing.
func (r *Resolver) staffAnswer(norm string) (string, bool) {
	for _, tok := range textnorm.Tokens(norm) {
		if m, ok := r.store.StaffByVariant(tok); ok {
			return r.formatStaffMember(m), true
		}
	}

	if m, ok := r.store.StaffByRole(norm); ok {
		return r.formatStaffMember(m), true
	}

	if textnorm.ContainsAny(norm, "funcionarios", "funcionario", "equipe", "pessoal", "staff") {
		for _, sk := range sectorKeywords {
			if strings.Contains(norm, sk.keyword) {
				if sec, ok := r.store.SectorByID(sk.sectorID); ok {
					return r.formatSector(sec), true
				}
			}
		}
		return r.formatDirectory(), true
	}

	return "", false
}

func (r *Resolver) formatStaffMember(m knowledge.StaffMember) string {
	var b strings.Builder
	sectorName := m.Sector
	sec, hasSector := r.store.SectorByID(m.Sector)
	if hasSector {
		sectorName = sec.Name
	}

	fmt.Fprintf(&b, "**%s**\n", m.Name)
	fmt.Fprintf(&b, "**Email:** %s\n", m.Email)
	fmt.Fprintf(&b, "**Cargo:** %s\n", m.Role)
	fmt.Fprintf(&b, "**Horário:** %s\n", m.Hours)
	fmt.Fprintf(&b, "**Setor:** %s\n\n", sectorName)

	b.WriteString("**Responsabilidades:**\n")
	for _, resp := range m.Responsibilities {
		fmt.Fprintf(&b, "• %s\n", resp)
	}
	fmt.Fprintf(&b, "\n**Contato:** %s", m.Email)

	if hasSector && sec.Location != "" {
		fmt.Fprintf(&b, "\n\n**Localização:** %s", sec.Location)
	}
	if hasSector && sec.Directions != "" {
		fmt.Fprintf(&b, "\n\n**Como chegar:** %s", sec.Directions)
	}
	return b.String()
}

func (r *Resolver) formatSector(sec knowledge.Sector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", sec.Name)
	fmt.Fprintf(&b, "**Descrição:** %s\n\n", sec.Description)
	b.WriteString("**Funcionários:**\n")
	for _, m := range r.store.Staff() {
		if m.Sector == sec.ID {
			fmt.Fprintf(&b, "• **%s** - %s (%s)\n", m.Name, m.Role, m.Hours)
		}
	}
	if sec.Location != "" {
		fmt.Fprintf(&b, "\n**Localização:** %s", sec.Location)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Resolver) formatDirectory() string {
	var b strings.Builder
	b.WriteString("Equipe do SENAI São Carlos:\n\n")
	for _, sec := range r.store.Sectors() {
		fmt.Fprintf(&b, "**%s**\n", sec.Name)
		for _, m := range r.store.Staff() {
			if m.Sector == sec.ID {
				fmt.Fprintf(&b, "• %s - %s\n", m.Name, m.Role)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Para contato, ligue (16) 2106-8700 ou escreva para saocarlos@sp.senai.br.")
	return b.String()
}
