package knowledge

// sectors is the organizational directory.
var sectors = []Sector{
	{
		ID:          "setor_apoio",
		Name:        "Setor de Apoio",
		Description: "Responsável pela qualidade de vida e apoio aos estudantes",
		Location:    "Sala 204 - Setor de Apoio (no refeitório, última sala à direita)",
		Directions:  "Ao passar pela catraca da entrada, siga reto por aproximadamente 15 passos e vire à direita. Você avistará o refeitório à sua direita. Ao entrar no refeitório, você avistará três salas à sua direita. Vá em direção à última sala - essa é a Sala 204, onde ficam a Fernanda e a Carla.",
		Keywords:    []string{"setor de apoio", "apoio", "qualidade de vida"},
	},
	{
		ID:          "direcao",
		Name:        "Direção",
		Description: "Direção da Unidade de Formação Profissional",
		Location:    "Sala de Direção",
		Keywords:    []string{"direcao", "diretoria"},
	},
	{
		ID:          "coordenacao_pedagogica",
		Name:        "Coordenação Pedagógica",
		Description: "Coordenação das atividades pedagógicas e práticas profissionais",
		Location:    "Sala 326 - Sala de Coordenação",
		Directions:  "Suba pela escada principal e vire à esquerda no corredor. Vá andando até quase o final do corredor, a Sala de Coordenação fica ao lado do banheiro masculino, do lado direito.",
		Keywords:    []string{"coordenacao", "pedagogica", "coordenacao pedagogica"},
	},
	{
		ID:          "orientacao",
		Name:        "Orientação de Prática Profissional",
		Description: "Orientação de práticas profissionais e estágios",
		Location:    "Sala do Orientador (Rainer)",
		Directions:  "Ao passar pela catraca da entrada, vire à esquerda e você verá uma rampa. Desça a rampa. Vire no primeiro corredor à sua direita. A sala do Orientador é a segunda porta à sua direita.",
		Keywords:    []string{"orientacao", "pratica profissional"},
	},
}

// staff lists every person the assistant knows about. NameVariants are
// normalized; they include first names, surnames and the forms users
// actually type.
var staff = []StaffMember{
	{
		Name:   "Fernanda Moreira",
		Email:  "fernanda.moreira@sp.senai.br",
		Role:   "Analista de Qualidade de Vida",
		Hours:  "12h às 21h",
		Sector: "setor_apoio",
		Responsibilities: []string{
			"Análise e melhoria da qualidade de vida dos estudantes",
			"Apoio psicossocial",
			"Desenvolvimento de programas de bem-estar",
			"Acompanhamento de indicadores de satisfação",
		},
		NameVariants: []string{"fernanda", "moreira", "fernanda moreira"},
	},
	{
		Name:   "Carla Ballestero",
		Email:  "carla.ballestero@sp.senai.br",
		Role:   "Analista de Qualidade de Vida",
		Hours:  "07h30min às 17h",
		Sector: "setor_apoio",
		Responsibilities: []string{
			"Análise e melhoria da qualidade de vida dos estudantes",
			"Apoio psicossocial",
			"Desenvolvimento de programas de bem-estar",
			"Acompanhamento de indicadores de satisfação",
		},
		NameVariants: []string{"carla", "ballestero", "carla ballestero"},
	},
	{
		Name:   "Marcio Vieira Marinho",
		Email:  "mmarinho@sp.senai.br",
		Role:   "Diretor de Unidade de Formação Profissional",
		Hours:  "08h às 17h",
		Sector: "direcao",
		Responsibilities: []string{
			"Direção geral da unidade",
			"Gestão estratégica",
			"Coordenação de atividades pedagógicas",
			"Relações institucionais",
		},
		NameVariants: []string{"marcio", "marinho", "marcio marinho", "marcio vieira marinho"},
	},
	{
		Name:   "Julio Cesar Melli",
		Email:  "jmelli@sp.senai.br",
		Role:   "Coordenador de Atividades Pedagógicas",
		Hours:  "07h30min às 17h30min",
		Sector: "coordenacao_pedagogica",
		Responsibilities: []string{
			"Coordenação das atividades pedagógicas",
			"Supervisão de professores",
			"Desenvolvimento de currículos",
			"Acompanhamento do desempenho acadêmico",
		},
		NameVariants: []string{"julio", "melli", "julio cesar", "julio cesar melli"},
	},
	{
		Name:   "Rainer Messias Bruno",
		Email:  "rainer.bruno@sp.senai.br",
		Role:   "Orientador de Prática Profissional",
		Hours:  "07h30min às 17h30min",
		Sector: "orientacao",
		Responsibilities: []string{
			"Orientação de práticas profissionais",
			"Acompanhamento de estágios",
			"Desenvolvimento de competências práticas",
			"Integração teoria-prática",
		},
		NameVariants: []string{"rainer", "bruno", "rainer bruno", "rainer messias bruno"},
	},
}

// roleKeywords maps normalized role phrases to the exact role title.
// Checked in order so queries naming several roles always resolve to the
// same person.
var roleKeywords = []struct {
	keyword string
	role    string
}{
	{"diretor da unidade", "Diretor de Unidade de Formação Profissional"},
	{"diretor do senai", "Diretor de Unidade de Formação Profissional"},
	{"diretor", "Diretor de Unidade de Formação Profissional"},
	{"coordenador pedagogico", "Coordenador de Atividades Pedagógicas"},
	{"coordenador", "Coordenador de Atividades Pedagógicas"},
	{"orientador de pratica", "Orientador de Prática Profissional"},
	{"orientador", "Orientador de Prática Profissional"},
	{"analista", "Analista de Qualidade de Vida"},
	{"qualidade de vida", "Analista de Qualidade de Vida"},
}
