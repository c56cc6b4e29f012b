package knowledge

// About describes the school unit.
const About = `A Escola SENAI São Carlos – "Antonio A. Lobbe", pertencente à rede SENAI São Paulo, oferece uma ampla variedade de cursos em diferentes níveis de formação. Entre os cursos técnicos presenciais, destaca-se o curso técnico de Administração e Gestão. No nível superior, a escola conta com dois Cursos Superiores de Tecnologia reconhecidos pelo MEC: Mecatrônica Industrial e Análise e Desenvolvimento de Sistemas, ambos presenciais no período noturno.

A unidade oferece diversos cursos livres e de aperfeiçoamento profissional, muitos deles de curta duração, nas modalidades presencial e online através da plataforma SENAI Online. Também oferece uma série de cursos de Aprendizagem Industrial (Aprendiz SENAI) gratuitos, voltados à formação inicial de jovens profissionais em diferentes áreas da indústria.

O Mural de Oportunidades funciona como ponte entre empresas e estudantes para vagas de estágio e emprego, atuando a unidade apenas como intermediária nas divulgações.`

// FullStructure is the consolidated overview used for structure questions
// and as prompt context.
const FullStructure = `**ESTRUTURA COMPLETA DO SENAI SÃO CARLOS:**

**FUNCIONÁRIOS E EQUIPE GESTORA:**
• Diretor: Marcio Vieira Marinho (mmarinho@sp.senai.br)
• Coordenador Pedagógico: Julio Cesar Melli (jmelli@sp.senai.br) - Sala 326
• Orientador de Prática: Rainer Messias Bruno (rainer.bruno@sp.senai.br)
• Analistas de Qualidade de Vida: Carla Ballestero e Fernanda Moreira (Sala 204)

**CURSOS OFERECIDOS:**
• Cursos Técnicos (Administração e Gestão)
• Cursos Superiores de Tecnologia (Mecatrônica Industrial e Análise e Desenvolvimento de Sistemas)
• Cursos de Aprendizagem Industrial (gratuitos)
• Cursos de Qualificação Profissional
• Cursos Livres e de Aperfeiçoamento

**LOCALIZAÇÃO E CONTATO:**
• Endereço: Rua Cândido Padim, 25 – Vila Prado, São Carlos/SP, CEP 13574-320
• Telefone: (16) 2106-8700
• Email: saocarlos@sp.senai.br
• Site: https://sp.senai.br/unidade/saocarlos/

**HORÁRIOS DE FUNCIONAMENTO:**
• Secretaria: Segunda a sexta-feira, das 8h às 20h, e aos sábados, das 8h às 13h e das 14h às 16h
• Biblioteca: Segunda a quinta-feira das 8h30 às 13h30 e das 15h às 22h
• Funcionários: Horários específicos por setor`

// InscriptionProcesses describes how to enroll, by course category.
var InscriptionProcesses = map[string]string{
	CategoryTechnical: "As inscrições para os cursos técnicos são feitas pelo site oficial ou presencialmente na secretaria.\n" +
		"- Documentos: RG, CPF e comprovante de escolaridade (ensino médio cursando ou concluído)\n" +
		"- As turmas abrem conforme o calendário semestral da unidade\n" +
		"- Valores e formas de pagamento são informados no ato da inscrição",
	CategoryApprenticeship: "Os cursos de Aprendizagem Industrial são gratuitos e vinculados a empresas parceiras.\n" +
		"- A indicação é feita pela empresa contratante do jovem aprendiz\n" +
		"- Faixa etária conforme a legislação de aprendizagem\n" +
		"- O processo seletivo é conduzido em conjunto com a empresa",
	CategoryQualification: "Os cursos de qualificação profissional têm inscrição contínua, conforme a abertura de turmas.\n" +
		"- Inscrições pelo site oficial ou na secretaria\n" +
		"- Requisitos variam conforme o curso escolhido",
}

// FAQ answers for recurring administrative questions.
var FAQ = map[string]string{
	"bolsas": "O SENAI São Carlos oferece possibilidades de bolsas de estudo e descontos conforme editais e convênios vigentes. " +
		"Os critérios consideram renda familiar e desempenho. Para saber as condições atuais, entre em contato com a secretaria " +
		"pelo telefone (16) 2106-8700 ou email saocarlos@sp.senai.br.",
	"estagios": "Sim! O SENAI São Carlos mantém o Mural de Oportunidades, que divulga vagas de estágio e emprego de empresas parceiras. " +
		"A unidade atua como intermediária entre empresas e estudantes. O quadro de vagas fica no refeitório e as oportunidades também " +
		"são divulgadas pela CoordEstágio.",
	"certificados": "Os certificados de cursos concluídos são emitidos pela secretaria. Para solicitar, compareça com um documento com foto " +
		"ou envie um email para saocarlos@sp.senai.br informando nome completo, curso e período de conclusão.",
}

// PartnerCompanies lists the main industry partners.
var PartnerCompanies = []string{
	"Volkswagen (Automotivo) - Estágio, Aprendizagem Industrial e Projetos",
	"Electrolux (Eletrodomésticos) - Estágio e Aprendizagem Industrial",
	"Faber-Castell (Material Escolar) - Aprendizagem Industrial e Visitas Técnicas",
	"Embraer (Aeronáutico) - Estágio, Projetos e Pesquisa",
}

// Events lists the main events hosted by the unit.
var Events = []string{
	"Fórum Ciência de Dados para a Indústria Inteligente (02 de outubro de 2025, das 9h às 16h30) - debate IA, ciência de dados e Indústria 4.0, em parceria com o Instituto de Estudos Avançados da USP",
	"Road Show da Jornada de Transformação Digital (02 de setembro de 2022) - evento de digitalização de indústrias da região, sediado pela unidade",
}

// Differentials lists what sets the unit apart.
var Differentials = []string{
	"Laboratórios modernos e bem equipados",
	"Salas de aula climatizadas",
	"Biblioteca técnica atualizada",
	"Professores com experiência na indústria",
	"Metodologia prática e hands-on",
	"Certificação reconhecida nacionalmente",
	"Parcerias com grandes empresas da região",
	"Alta taxa de empregabilidade dos alunos",
	"FabLab para prototipagem",
	"Participação em competições tecnológicas",
	"Incentivo ao empreendedorismo",
}
