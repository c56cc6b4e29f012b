package knowledge

// Course category identifiers.
const (
	CategoryTechnical      = "tecnico"
	CategoryHigher         = "superior"
	CategoryApprenticeship = "aprendizagem"
	CategoryQualification  = "qualificacao"
)

var courses = []Course{
	{
		Name:        "Técnico em Administração e Gestão",
		Category:    CategoryTechnical,
		Duration:    "Consultar na secretaria",
		Modality:    "Presencial",
		Requirement: "Nível médio (cursando ou concluído)",
		Price:       "Consultar valores atualizados no site ou por telefone (16) 2106-8700",
		Description: "Forma profissionais para atuar na gestão administrativa e empresarial.",
	},
	{
		Name:        "Curso Superior de Tecnologia em Mecatrônica Industrial",
		Category:    CategoryHigher,
		Duration:    "Consultar na secretaria",
		Modality:    "Presencial",
		Schedule:    "Noturno",
		Requirement: "Ensino Médio completo",
		Price:       "Consultar valores atualizados no site ou por telefone (16) 2106-8700",
		Description: "Formação prática e tecnológica voltada à indústria, com foco em mecatrônica. Reconhecido pelo MEC.",
	},
	{
		Name:        "Curso Superior de Tecnologia em Análise e Desenvolvimento de Sistemas",
		Category:    CategoryHigher,
		Duration:    "Consultar na secretaria",
		Modality:    "Presencial",
		Schedule:    "Noturno",
		Requirement: "Ensino Médio completo",
		Price:       "Consultar valores atualizados no site ou por telefone (16) 2106-8700",
		Description: "Formação prática e tecnológica voltada ao mercado de trabalho em TI e desenvolvimento de sistemas. Reconhecido pelo MEC.",
	},
	{
		Name:        "Assistente Técnico de Vendas",
		Category:    CategoryApprenticeship,
		Duration:    "800 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Curso de aprendizagem para atuação comercial",
	},
	{
		Name:        "Eletricista de Manutenção Eletroeletrônica",
		Category:    CategoryApprenticeship,
		Duration:    "1.600 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Formação na área eletroeletrônica",
	},
	{
		Name:        "Mecânico de Manutenção",
		Category:    CategoryApprenticeship,
		Duration:    "1.600 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Envolve manutenção industrial mecânica",
	},
	{
		Name:        "Operador de Suporte Técnico em Tecnologia da Informação",
		Category:    CategoryApprenticeship,
		Duration:    "800 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Atuação na área de TI / suporte técnico",
	},
	{
		Name:        "Auxiliar de Linha de Produção",
		Category:    CategoryApprenticeship,
		Duration:    "800 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Atuação em processos produtivos",
	},
	{
		Name:        "Eletricista Industrial",
		Category:    CategoryApprenticeship,
		Duration:    "800 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Atuação na parte elétrica industrial",
	},
	{
		Name:        "Mecânico de Usinagem",
		Category:    CategoryApprenticeship,
		Duration:    "1.600 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Manuseio e operação de máquinas usinadoras",
	},
	{
		Name:        "Soldador",
		Category:    CategoryApprenticeship,
		Duration:    "800 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Técnicas de soldagem e metalurgia",
	},
	{
		Name:        "Assistente de Logística",
		Category:    CategoryApprenticeship,
		Duration:    "980 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Logística, transporte e cadeia produtiva",
	},
	{
		Name:        "Assistente Administrativo",
		Category:    CategoryApprenticeship,
		Duration:    "400 horas",
		Modality:    "Presencial",
		Price:       "Gratuito",
		Description: "Atividades administrativas básicas",
	},
	{
		Name:        "Cursos Livres e de Aperfeiçoamento Profissional",
		Category:    CategoryQualification,
		Duration:    "Variável (curta duração)",
		Modality:    "Presencial e Online (SENAI Online)",
		Requirement: "Variável conforme o curso",
		Price:       "Consultar valores atualizados no site ou por telefone (16) 2106-8700",
		Description: "Diversos cursos livres e de aperfeiçoamento profissional em áreas técnicas e administrativas.",
	},
}

// ApprenticeshipNote explains the free apprenticeship program.
const ApprenticeshipNote = "Todos os cursos de Aprendizagem Industrial (Aprendiz SENAI) são gratuitos e destinados principalmente a jovens aprendizes vinculados a empresas parceiras."

// OpportunityBoardNote explains the job/internship board policy.
const OpportunityBoardNote = "O Mural de Oportunidades do SENAI São Carlos funciona como um espaço de divulgação de vagas de estágio e emprego, servindo como ponte entre empresas e estudantes. A unidade atua apenas como intermediária."
