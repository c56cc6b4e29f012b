package resolve

import (
	"fmt"
	"strings"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// fixedIntent resolves the recurring institutional questions that have a
// single right answer. Checked after location so "onde fica a secretaria"
// gets directions, not opening hours.
func (r *Resolver) fixedIntent(norm string) (string, bool) {
	switch {
	case textnorm.ContainsAny(norm, "estrutura completa", "estrutura da escola", "estrutura do senai"):
		return knowledge.FullStructure, true

	case r.isCoursesQuestion(norm):
		return r.coursesAnswer(norm)

	case textnorm.ContainsAny(norm, "site", "pagina oficial", "website"):
		return fmt.Sprintf("O site oficial do SENAI São Carlos é %s — lá você encontra os cursos abertos, "+
			"valores e o processo de inscrição.", knowledge.Website), true

	// Phone, email and address questions belong to the contact handler.
	case textnorm.ContainsAny(norm, "telefone", "email", "e mail", "contato", "whatsapp"):
		return "", false

	case strings.Contains(norm, "secretaria") && textnorm.ContainsAny(norm, "horario", "que horas", "funciona", "abre", "fecha"):
		if c, ok := r.store.ContactByID("secretaria"); ok {
			return fmt.Sprintf("A Secretaria atende de %s.\n\nTelefone: %s\nEmail: %s", c.Hours, c.Phone, c.Email), true
		}
		return fmt.Sprintf("A Secretaria atende: %s.", knowledge.OpeningHours), true

	case textnorm.ContainsAny(norm, "inscricao", "inscricoes", "inscrever", "matricula", "matricular", "como entrar"):
		return r.inscriptionAnswer(norm), true

	case textnorm.ContainsAny(norm, "laboratorios", "quais laboratorios", "infraestrutura", "instalacoes"):
		return r.labsAnswer(), true

	case textnorm.ContainsAny(norm, "parceir", "empresas parceiras", "convenio"):
		return partnersAnswer(), true

	case textnorm.ContainsAny(norm, "bolsa", "bolsas", "desconto"):
		// "tem bolsa?" style questions get the generated answer.
		if textnorm.ContainsAny(norm, "tem desconto", "tem bolsa", "tem bolsas") {
			return "", false
		}
		return knowledge.FAQ["bolsas"], true

	case strings.Contains(norm, "estagio"):
		return knowledge.FAQ["estagios"] + "\n\n" + knowledge.OpportunityBoardNote, true

	case textnorm.ContainsAny(norm, "certificado", "certificados", "diploma"):
		return knowledge.FAQ["certificados"], true

	case textnorm.ContainsAny(norm, "sobre o senai", "o que e o senai", "historia do senai", "historia da escola"):
		return knowledge.About, true

	case textnorm.ContainsAny(norm, "diferencial", "diferenciais", "por que estudar", "porque estudar"):
		return differentialsAnswer(), true

	case strings.Contains(norm, "visita tecnica"):
		return "O SENAI São Carlos realiza visitas técnicas a empresas parceiras como parte da formação dos alunos. " +
			"As visitas são organizadas pelos professores de cada curso, conforme o planejamento do semestre. " +
			"Para saber as próximas visitas do seu curso, fale com o seu professor ou com a coordenação.", true

	case textnorm.ContainsAny(norm, "competicao", "competicoes", "olimpiada", "torneio de robotica", "worldskills"):
		return "Nossos alunos participam de competições tecnológicas como a WorldSkills e torneios de robótica, " +
			"com apoio dos professores e do Laboratório de Robótica (sala 330). " +
			"A participação é um dos diferenciais da unidade e já rendeu boas colocações à escola!", true

	case strings.Contains(norm, "empreendedor"):
		return "O SENAI São Carlos incentiva o empreendedorismo dos alunos com atividades práticas, " +
			"projetos no FabLab (SENAI Lab) e orientação dos professores para transformar ideias em protótipos. " +
			"Se quiser conhecer o espaço, posso te explicar como chegar ao SENAI Lab!", true

	case strings.Contains(norm, "evento"):
		return eventsAnswer(), true

	case textnorm.ContainsAny(norm, "justificar falta", "justificativa de falta", "atestado", "abonar falta"):
		return fmt.Sprintf("Para justificar faltas, entregue o atestado ou a justificativa na secretaria da escola "+
			"em até 48 horas úteis após o retorno, ou envie por email para %s informando nome completo, curso e turma. "+
			"A secretaria encaminha a análise para a coordenação do curso.", knowledge.Email), true

	case textnorm.ContainsAny(norm, "sala dos professores", "apoio docente", "sala de apoio docente"):
		return "A sala de apoio aos docentes fica no primeiro andar, próxima à Sala de Coordenação (326). " +
			"Se você precisa falar com um professor específico, me diga o nome dele que eu te ajudo a localizá-lo!", true

	case textnorm.ContainsAny(norm, "calendario", "calendario academico", "calendario escolar"):
		return knowledge.Canned(knowledge.AnswerCalendar), true

	case strings.Contains(norm, "extintor") && strings.Contains(norm, "hidrante"):
		return safetyAnswer(), true

	case textnorm.ContainsAny(norm, "endereco da escola", "endereco do senai", "onde fica o senai", "onde fica a escola", "localizacao do senai", "localizacao da escola"):
		return knowledge.Canned(knowledge.AnswerAddress), true

	case strings.Contains(norm, "escada") && strings.Contains(norm, "elevador"):
		return "A Escada Principal fica no final do corredor principal, depois da secretaria. " +
			"O elevador fica ao lado dela e dá acesso ao primeiro andar — é indicado principalmente para " +
			"pessoas com mobilidade reduzida. Para usá-lo, peça auxílio a um funcionário.", true

	case strings.Contains(norm, "extintor") && strings.Contains(norm, "refeitorio"):
		return "No refeitório há um extintor de incêndio na parede ao lado da entrada, próximo à AAPM. " +
			"Em caso de emergência, acione também o alarme de incêndio e avise um funcionário.", true

	case strings.Contains(norm, "refeitorio") && textnorm.ContainsAny(norm, "o que tem", "que tem", "como e", "descricao"):
		return "O refeitório é o espaço de refeições e convivência da escola. Lá você encontra a cantina (ao fundo, " +
			"à esquerda), mesas e puffs para descanso, a TV, o Mural de Oportunidades com vagas de estágio e emprego, " +
			"e as salas da AAPM (202, achados e perdidos), da CoordEstágio e do Setor de Apoio (204).", true
	}

	return "", false
}

func (r *Resolver) isCoursesQuestion(norm string) bool {
	if !textnorm.ContainsAny(norm, "curso", "cursos", "mecatronica", "analise e desenvolvimento", "aprendizagem", "aprendiz senai", "qualificacao") {
		return false
	}
	// Duration and price details vary by turma; let the delegate answer
	// from the catalog snippets.
	if textnorm.ContainsAny(norm, "duracao", "quanto tempo", "carga horaria", "quanto custa", "qual o valor") {
		return false
	}
	return true
}

func (r *Resolver) coursesAnswer(norm string) (string, bool) {
	switch {
	case strings.Contains(norm, "mecatronica"):
		return r.courseDetail("Mecatrônica Industrial")
	case textnorm.ContainsAny(norm, "analise e desenvolvimento", "desenvolvimento de sistemas", "ads"):
		return r.courseDetail("Análise e Desenvolvimento de Sistemas")
	case textnorm.ContainsAny(norm, "administracao", "gestao"):
		return r.courseDetail("Administração e Gestão")
	case textnorm.ContainsAny(norm, "cursos tecnicos", "curso tecnico"):
		return r.categoryListing(knowledge.CategoryTechnical, "Cursos Técnicos"), true
	case textnorm.ContainsAny(norm, "cursos superiores", "curso superior", "faculdade", "graduacao"):
		return r.categoryListing(knowledge.CategoryHigher, "Cursos Superiores de Tecnologia"), true
	case textnorm.ContainsAny(norm, "aprendizagem", "aprendiz", "gratuito", "gratuitos"):
		return r.categoryListing(knowledge.CategoryApprenticeship, "Cursos de Aprendizagem Industrial (gratuitos)") +
			"\n\n" + knowledge.ApprenticeshipNote, true
	case textnorm.ContainsAny(norm, "qualificacao", "cursos livres", "aperfeicoamento"):
		return r.categoryListing(knowledge.CategoryQualification, "Cursos de Qualificação e Aperfeiçoamento"), true
	default:
		return r.allCoursesAnswer(), true
	}
}

func (r *Resolver) courseDetail(name string) (string, bool) {
	for _, c := range r.store.Courses() {
		if !strings.Contains(c.Name, name) {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**\n\n", c.Name)
		fmt.Fprintf(&b, "- Modalidade: %s\n", c.Modality)
		if c.Schedule != "" {
			fmt.Fprintf(&b, "- Período: %s\n", c.Schedule)
		}
		fmt.Fprintf(&b, "- Duração: %s\n", c.Duration)
		if c.Requirement != "" {
			fmt.Fprintf(&b, "- Requisito: %s\n", c.Requirement)
		}
		fmt.Fprintf(&b, "- Investimento: %s\n\n%s", c.Price, c.Description)
		return b.String(), true
	}
	return "", false
}

func (r *Resolver) categoryListing(category, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s:**\n\n", title)
	for _, c := range r.store.CoursesByCategory(category) {
		fmt.Fprintf(&b, "• %s", c.Name)
		if c.Duration != "" && c.Duration != "Consultar na secretaria" {
			fmt.Fprintf(&b, " (%s)", c.Duration)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nPara valores e turmas abertas, consulte %s ou ligue %s.", knowledge.Website, knowledge.Phone)
	return b.String()
}

func (r *Resolver) allCoursesAnswer() string {
	var b strings.Builder
	b.WriteString("O SENAI São Carlos oferece cursos em vários níveis de formação:\n\n")
	b.WriteString("**Cursos Técnicos:**\n")
	for _, c := range r.store.CoursesByCategory(knowledge.CategoryTechnical) {
		fmt.Fprintf(&b, "• %s\n", c.Name)
	}
	b.WriteString("\n**Cursos Superiores de Tecnologia (reconhecidos pelo MEC):**\n")
	for _, c := range r.store.CoursesByCategory(knowledge.CategoryHigher) {
		fmt.Fprintf(&b, "• %s\n", c.Name)
	}
	b.WriteString("\n**Cursos de Aprendizagem Industrial (gratuitos):**\n")
	for _, c := range r.store.CoursesByCategory(knowledge.CategoryApprenticeship) {
		fmt.Fprintf(&b, "• %s (%s)\n", c.Name, c.Duration)
	}
	b.WriteString("\n**Qualificação e Cursos Livres:**\n")
	for _, c := range r.store.CoursesByCategory(knowledge.CategoryQualification) {
		fmt.Fprintf(&b, "• %s\n", c.Name)
	}
	fmt.Fprintf(&b, "\nPara valores e turmas abertas, consulte %s ou ligue %s.", knowledge.Website, knowledge.Phone)
	return b.String()
}

func (r *Resolver) inscriptionAnswer(norm string) string {
	switch {
	case textnorm.ContainsAny(norm, "tecnico", "tecnicos"):
		return knowledge.InscriptionProcesses[knowledge.CategoryTechnical]
	case textnorm.ContainsAny(norm, "aprendizagem", "aprendiz"):
		return knowledge.InscriptionProcesses[knowledge.CategoryApprenticeship]
	case textnorm.ContainsAny(norm, "qualificacao", "livre", "livres"):
		return knowledge.InscriptionProcesses[knowledge.CategoryQualification]
	}

	var b strings.Builder
	b.WriteString("**Como se inscrever nos cursos do SENAI São Carlos:**\n\n")
	fmt.Fprintf(&b, "**Cursos Técnicos:**\n%s\n\n", knowledge.InscriptionProcesses[knowledge.CategoryTechnical])
	fmt.Fprintf(&b, "**Aprendizagem Industrial:**\n%s\n\n", knowledge.InscriptionProcesses[knowledge.CategoryApprenticeship])
	fmt.Fprintf(&b, "**Qualificação Profissional:**\n%s\n\n", knowledge.InscriptionProcesses[knowledge.CategoryQualification])
	fmt.Fprintf(&b, "Dúvidas? Ligue %s ou escreva para %s.", knowledge.Phone, knowledge.Email)
	return b.String()
}

func (r *Resolver) labsAnswer() string {
	var b strings.Builder
	b.WriteString("Principais laboratórios e espaços do SENAI São Carlos:\n\n")
	for _, rm := range r.store.Rooms() {
		if rm.Kind != knowledge.KindLab {
			continue
		}
		fmt.Fprintf(&b, "• **%s** - %s, %s", rm.Name, rm.Location.Building, rm.Location.Floor)
		if n := rm.Location.Room; n != "" && n != "-" {
			fmt.Fprintf(&b, ", Sala %s", n)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nQuer saber como chegar a algum deles? É só perguntar!")
	return b.String()
}

func partnersAnswer() string {
	var b strings.Builder
	b.WriteString("O SENAI São Carlos mantém parcerias com grandes empresas da região:\n\n")
	for _, p := range knowledge.PartnerCompanies {
		fmt.Fprintf(&b, "• %s\n", p)
	}
	b.WriteString("\nAs parcerias abrem vagas de estágio, aprendizagem industrial e projetos conjuntos. " +
		"As oportunidades são divulgadas no Mural de Oportunidades, no refeitório.")
	return b.String()
}

func differentialsAnswer() string {
	var b strings.Builder
	b.WriteString("Diferenciais do SENAI São Carlos:\n\n")
	for _, d := range knowledge.Differentials {
		fmt.Fprintf(&b, "• %s\n", d)
	}
	return strings.TrimRight(b.String(), "\n")
}

func eventsAnswer() string {
	var b strings.Builder
	b.WriteString("Eventos sediados pelo SENAI São Carlos:\n\n")
	for _, e := range knowledge.Events {
		fmt.Fprintf(&b, "• %s\n", e)
	}
	b.WriteString("\nA agenda atualizada é divulgada no site oficial e nos murais da escola.")
	return b.String()
}

func safetyAnswer() string {
	return "Equipamentos de combate a incêndio na escola:\n\n" +
		"- **Extintores:** distribuídos pelos corredores, no refeitório, na biblioteca e em todos os laboratórios, " +
		"sempre sinalizados na parede\n" +
		"- **Hidrantes:** nas caixas vermelhas dos corredores principais, no térreo e no primeiro andar\n\n" +
		"Em caso de emergência, acione o alarme de incêndio, avise um funcionário e siga para a saída mais próxima."
}
