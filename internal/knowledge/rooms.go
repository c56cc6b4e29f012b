package knowledge

// rooms is the campus room table in insertion order. Entries near the top
// are the most asked about. Keywords are stored normalized (lowercase, no
// accents); resolution scores them by phrase length plus boosts.
var rooms = []Room{
	{
		ID:          "refeitorio",
		Name:        "Refeitório",
		Kind:        KindCommon,
		Description: "Espaço para refeições com cantina e área de convivência",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "R-01",
			Reference: "Próximo à entrada principal",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca na entrada da escola",
				"Siga reto por aproximadamente 15 passos",
				"Vire à direita",
				"O refeitório estará à sua direita",
			},
			Landmarks:  []string{"Catraca da entrada", "Corredor principal"},
			ExtraHints: "Ao entrar no refeitório, você encontrará a AAPM (sala de achados e perdidos) à sua direita",
		},
		Hours:    "Segunda a Sexta, das 7h às 22h",
		Keywords: []string{"refeitorio", "cantina", "onde comer", "area de convivencia"},
	},
	{
		ID:          "aapm_achados_202",
		Name:        "AAPM (Achados e Perdidos) (202)",
		Kind:        KindAdmin,
		Description: "Associação de Pais e Mestres e Achados e Perdidos",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "202",
			Reference: "Entrada do refeitório, primeira sala à direita",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca na entrada da escola",
				"Siga reto por aproximadamente 15 passos",
				"Vire à direita e entre no refeitório",
				"Logo na entrada, a primeira sala à direita é a AAPM (Achados e Perdidos)",
			},
			Landmarks: []string{"Catraca", "Entrada do refeitório"},
		},
		Keywords: []string{"aapm", "achados e perdidos", "achados"},
	},
	{
		ID:          "coord_estagio",
		Name:        "Coordenação de Estágio",
		Kind:        KindAdmin,
		Description: "Setor responsável pela coordenação de estágios",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "A-Estágio",
			Reference: "Dentro do refeitório, ao lado da AAPM (após a TV)",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca na entrada da escola",
				"Siga reto por aproximadamente 15 passos",
				"Vire à direita e entre no refeitório",
				"Siga em direção à TV no fundo",
				"Após a primeira sala (AAPM), a sala ao lado é a CoordEstágio",
			},
			Landmarks: []string{"Catraca", "TV do refeitório", "AAPM"},
		},
		Hours:    "Segunda a Sexta, horário comercial",
		Keywords: []string{"coordenacao de estagio", "coordestagio", "estagio"},
	},
	{
		ID:          "setor_apoio",
		Name:        "Setor de Apoio (Análise de Qualidade de Vida)",
		Kind:        KindAdmin,
		Description: "Setor de apoio ao aluno - Sala 204",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "204",
			Reference: "Dentro do refeitório, última sala à direita",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca na entrada da escola",
				"Siga reto por aproximadamente 15 passos",
				"Vire à direita e entre no refeitório",
				"Siga pela direita até a última sala (Sala 204)",
			},
			Landmarks:  []string{"Catraca", "Refeitório", "Sala 204"},
			ExtraHints: "Horário: 07:30–17:30 e 18:30–21:00. Funcionários: Carla Ballestero e Fernanda Moreira",
		},
		Hours:    "Segunda a Sexta: 07:30–17:30 e 18:30–21:00",
		Keywords: []string{"setor de apoio", "qualidade de vida", "sala 204", "apoio ao aluno"},
	},
	{
		ID:          "cantina",
		Name:        "Cantina",
		Kind:        KindFacility,
		Description: "Cantina do refeitório",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Reference: "Dentro do refeitório, ao fundo à esquerda",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca",
				"Siga reto ~15 passos e vire à direita",
				"Entre no refeitório e siga à esquerda até o fundo",
				"Ao lado dos puffs, vire à direita para a cantina",
			},
			Landmarks: []string{"Catraca", "Puffs"},
		},
		Keywords: []string{"cantina do refeitorio", "lanche"},
	},
	{
		ID:          "puffs",
		Name:        "Área dos Puffs",
		Kind:        KindCommon,
		Description: "Área de descanso com puffs no refeitório",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Reference: "Última parte do refeitório, ao fundo à esquerda",
		},
		Navigation: Navigation{
			Steps: []string{
				"Passe pela catraca",
				"Siga reto ~15 passos e vire à direita",
				"Entre no refeitório e siga à esquerda até o fundo",
			},
			Landmarks: []string{"Catraca"},
		},
		Keywords: []string{"puffs", "area dos puffs", "area de descanso"},
	},
	{
		ID:          "escada",
		Name:        "Escada",
		Kind:        KindFacility,
		Description: "Escada próxima ao Arquivo Morto, logo após a entrada",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Reference: "Após a entrada, do lado esquerdo, próxima ao Arquivo Morto",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre no prédio pela entrada",
				"Veja o elevador à esquerda",
				"A escada fica um pouco adiante, também do lado esquerdo",
			},
			Landmarks: []string{"Arquivo Morto", "Elevador"},
		},
		Keywords: []string{"escada"},
	},
	{
		ID:          "elevador",
		Name:        "Elevador",
		Kind:        KindFacility,
		Description: "Elevador próximo ao Arquivo Morto, logo à esquerda da entrada",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Reference: "Logo ao entrar, à esquerda",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre pela entrada principal",
				"O elevador está à esquerda",
				"A escada fica mais adiante, também à esquerda",
			},
			Landmarks: []string{"Arquivo Morto"},
		},
		Keywords: []string{"elevador"},
	},
	{
		ID:          "banheiro_masc_214",
		Name:        "Banheiro Masculino (214)",
		Kind:        KindFacility,
		Description: "Banheiro masculino no andar de baixo",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "214",
			Reference: "Primeiras portas à esquerda no corredor do refeitório",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre no refeitório e vire à esquerda",
				"Siga em direção aos puffs",
				"Entre no corredor à esquerda",
				"A segunda porta à esquerda é o banheiro masculino (214)",
			},
			Landmarks: []string{"Puffs"},
		},
		Keywords:   []string{"banheiro masculino 214", "banheiro masculino terreo", "banheiro masculino"},
		Qualifiers: []string{"masculino", "terreo", "214"},
	},
	{
		ID:          "banheiro_fem_213",
		Name:        "Banheiro Feminino (213)",
		Kind:        KindFacility,
		Description: "Banheiro feminino no andar de baixo",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "213",
			Reference: "Primeira porta à esquerda no corredor do refeitório",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre no refeitório e vire à esquerda",
				"Siga em direção aos puffs",
				"Entre no corredor à esquerda",
				"A primeira porta à esquerda é o banheiro feminino (213)",
			},
			Landmarks: []string{"Puffs"},
		},
		Keywords:   []string{"banheiro feminino 213", "banheiro feminino terreo", "banheiro feminino"},
		Qualifiers: []string{"feminino", "terreo", "213"},
	},
	{
		ID:          "banheiro_masc_1_andar",
		Name:        "Banheiro Masculino (1º Andar)",
		Kind:        KindFacility,
		Description: "Banheiro masculino no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "Corredor esquerdo, à direita próximo da Coordenação",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba a escada principal",
				"Vire à esquerda no corredor",
				"Siga reto, o banheiro masculino estará à direita",
				"Próximo da Sala de Coordenação",
			},
			Landmarks: []string{"Escada principal", "Sala de Coordenação"},
		},
		Keywords:   []string{"banheiro masculino 1 andar", "banheiro masculino andar superior"},
		Qualifiers: []string{"masculino", "1 andar", "superior"},
	},
	{
		ID:          "banheiro_fem_1_andar_316",
		Name:        "Banheiro Feminino (316)",
		Kind:        KindFacility,
		Description: "Banheiro feminino no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "316",
			Reference: "Logo à frente ao subir a escada principal",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Logo à sua frente estão os banheiros femininos",
			},
			Landmarks: []string{"Escada principal"},
		},
		Keywords:   []string{"banheiro feminino 316", "banheiro feminino 1 andar"},
		Qualifiers: []string{"feminino", "1 andar", "superior", "316"},
	},
	{
		ID:          "banheiro_acessivel_314",
		Name:        "Banheiro Acessível (314)",
		Kind:        KindFacility,
		Description: "Banheiro acessível no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "314",
			Reference: "Logo à frente ao subir a escada principal",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Logo à sua frente estão os banheiros acessíveis",
			},
			Landmarks: []string{"Escada principal"},
		},
		Keywords:   []string{"banheiro acessivel 314", "banheiro acessivel"},
		Qualifiers: []string{"acessivel", "314"},
	},
	{
		ID:          "banheiro_acessivel_313",
		Name:        "Banheiro Acessível (313)",
		Kind:        KindFacility,
		Description: "Banheiro acessível no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "313",
			Reference: "Logo à frente ao subir a escada principal",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Logo à sua frente estão os banheiros acessíveis",
			},
			Landmarks: []string{"Escada principal"},
		},
		Keywords:   []string{"banheiro acessivel 313"},
		Qualifiers: []string{"acessivel", "313"},
	},
	{
		ID:          "sanitario_masc_usinagem",
		Name:        "Sanitário Masculino (Usinagem)",
		Kind:        KindFacility,
		Description: "Sanitário masculino da área de usinagem",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "Quinta porta à direita após descer a rampa",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca da entrada, vire à esquerda",
				"Você verá uma rampa",
				"Desça a rampa",
				"Vire no primeiro corredor à sua direita",
				"O Sanitário Masculino é a quinta porta à sua direita",
			},
			Landmarks:  []string{"Catraca", "Rampa", "Primeiro corredor à direita"},
			ExtraHints: "Área de usinagem",
		},
		Keywords:   []string{"sanitario masculino usinagem", "banheiro masculino usinagem"},
		Qualifiers: []string{"masculino", "usinagem"},
	},
	{
		ID:          "sanitario_fem_usinagem",
		Name:        "Sanitário Feminino (Usinagem)",
		Kind:        KindFacility,
		Description: "Sanitário feminino da área de usinagem",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "Terceira porta à direita após descer a rampa",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca da entrada, vire à esquerda",
				"Você verá uma rampa",
				"Desça a rampa",
				"Vire no primeiro corredor à sua direita",
				"O Sanitário Feminino é a terceira porta à sua direita",
			},
			Landmarks:  []string{"Catraca", "Rampa", "Primeiro corredor à direita"},
			ExtraHints: "Área de usinagem",
		},
		Keywords:   []string{"sanitario feminino usinagem", "banheiro feminino usinagem"},
		Qualifiers: []string{"feminino", "usinagem"},
	},
	{
		ID:          "biblioteca",
		Name:        "Biblioteca",
		Kind:        KindCommon,
		Description: "Biblioteca técnica com acervo especializado e área de estudos",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "103",
			Reference: "Acesso pela rampa à esquerda da entrada; primeira porta à esquerda ao final da rampa",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca da entrada, vire à esquerda",
				"Desça a rampa",
				"A primeira porta à esquerda é a Biblioteca",
			},
			Landmarks:  []string{"Escada principal", "Corredor do 1º andar"},
			ExtraHints: "Há uma placa indicativa grande na porta",
		},
		Hours:    "Segunda a Quinta, das 8h30 às 13h30 e das 15h às 22h; Sextas, das 8h30 às 13h30 e das 15h às 21h; Sábados, das 8h às 12h15 e das 12h30 às 14h15",
		Keywords: []string{"biblioteca", "acervo", "area de estudos"},
	},
	{
		ID:          "secretaria",
		Name:        "Secretaria",
		Kind:        KindAdmin,
		Description: "Setor de atendimento e processos administrativos",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Room:      "A-01",
			Reference: "Ao lado da entrada principal",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre pela porta principal",
				"A secretaria é a primeira sala à esquerda",
				"Procure o balcão de atendimento",
			},
			Landmarks:  []string{"Entrada principal", "Hall de entrada"},
			ExtraHints: "Há uma TV com senhas de atendimento no local",
		},
		Hours:    "Segunda a Sexta, das 7h às 21h",
		Keywords: []string{"secretaria", "matricula", "atendimento"},
	},
	{
		ID:          "lab_mecanica",
		Name:        "Laboratório de Mecânica",
		Kind:        KindLab,
		Description: "Laboratório equipado com tornos, fresas e equipamentos CNC",
		Location: Location{
			Building:  "Oficinas",
			Floor:     "Térreo",
			Room:      "O-01",
			Reference: "Próximo ao estacionamento dos fundos",
		},
		Navigation: Navigation{
			Steps: []string{
				"Da entrada principal, siga pelo corredor à direita",
				"Passe pelo pátio coberto",
				"Entre no prédio das oficinas",
				"O laboratório é a primeira porta à esquerda",
			},
			Landmarks:  []string{"Pátio coberto", "Prédio das oficinas"},
			ExtraHints: "Você pode identificar o laboratório pelo som das máquinas",
		},
		Capacity: 30,
		Keywords: []string{"laboratorio de mecanica", "lab mecanica", "tornos", "cnc"},
	},
	{
		ID:          "mecanica_automobilistica_223",
		Name:        "Área de Mecânica Automobilística (223)",
		Kind:        KindLab,
		Description: "Área com veículos, alinhamento, depósito, motores etc.",
		Location: Location{
			Building:  "Oficinas",
			Floor:     "Térreo",
			Room:      "223",
			Reference: "Ao fim do corredor do refeitório, porta no fim",
		},
		Navigation: Navigation{
			Steps: []string{
				"Entre no refeitório e vire à esquerda",
				"Siga até os puffs e entre no corredor à esquerda",
				"Siga até o fim do corredor e passe pela porta da área",
			},
			Landmarks:  []string{"Puffs", "Corredor"},
			ExtraHints: "Uso de EPIs é obrigatório",
		},
		Keywords: []string{"mecanica automobilistica", "area de mecanica automobilistica", "sala 223"},
	},
	{
		ID:          "lab_informatica_ii_315",
		Name:        "Lab. Informática II (40 lugares) (315)",
		Kind:        KindLab,
		Description: "Laboratório de informática com 40 lugares",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "315",
			Reference: "Corredor esquerdo, primeira porta à direita antes do banheiro masculino",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba a escada principal",
				"Vire à esquerda no corredor",
				"Siga reto até quase o final",
				"O Lab. de Informática II é a primeira porta à direita antes do banheiro masculino",
			},
			Landmarks: []string{"Escada principal", "Banheiro masculino"},
		},
		Capacity: 40,
		Keywords: []string{"lab informatica ii", "laboratorio de informatica 315", "sala 315"},
	},
	{
		ID:          "coordenacao_326",
		Name:        "Sala de Coordenação (326)",
		Kind:        KindAdmin,
		Description: "Sala de coordenação pedagógica - Sala 326",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "326",
			Reference: "Corredor esquerdo, próximo ao final, ao lado do banheiro masculino",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Vire à esquerda no corredor",
				"Vá andando até quase o final do corredor",
				"A Coordenação (Sala 326) fica ao lado do banheiro masculino, do lado direito",
			},
			Landmarks:  []string{"Escada principal", "Banheiro masculino", "Sala 326"},
			ExtraHints: "Funcionário: Julio Cesar Melli (Coordenador de Atividades Pedagógicas)",
		},
		Hours:    "Segunda a Sexta: 07:30–17:30",
		Keywords: []string{"coordenacao pedagogica", "sala de coordenacao", "sala 326", "coordenacao"},
	},
	{
		ID:          "lab_hidraulica_328",
		Name:        "Lab. Hidráulica (328)",
		Kind:        KindLab,
		Description: "Laboratório de Hidráulica no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "328",
			Reference: "Corredor esquerdo, ao lado da Coordenação no lado direito",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Vire à esquerda no corredor",
				"Siga em frente até encontrar o Lab. de Hidráulica",
				"Fica ao lado da Coordenação no lado direito",
			},
			Landmarks: []string{"Escada principal", "Sala de Coordenação"},
		},
		Keywords: []string{"laboratorio de hidraulica", "lab hidraulica", "sala 328"},
	},
	{
		ID:          "lab_comandos_acionamentos_334",
		Name:        "Lab. Comandos e Acionamentos (334)",
		Kind:        KindLab,
		Description: "Laboratório de Comandos e Acionamentos no andar superior",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "334",
			Reference: "Após subir pela escada principal, corredor esquerdo, próximo ao relógio",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Vire à esquerda e siga reto",
				"Você verá um relógio - caminhe em direção a ele",
				"O laboratório é a sala logo à frente à esquerda",
			},
			Landmarks: []string{"Escada principal", "Relógio do corredor"},
		},
		Keywords: []string{"comandos e acionamentos", "lab comandos", "sala 334"},
	},
	{
		ID:          "auditorio_305",
		Name:        "Auditório (305)",
		Kind:        KindFacility,
		Description: "Auditório para eventos e apresentações",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Room:      "305",
			Reference: "Final do corredor direito, início do novo corredor à direita",
		},
		Navigation: Navigation{
			Steps: []string{
				"Suba pela escada principal",
				"Vire à direita no corredor",
				"Vá até o final e vire à direita novamente",
				"O Auditório é no início do corredor, do lado direito",
			},
			Landmarks: []string{"Escada principal"},
		},
		Keywords: []string{"auditorio", "sala 305"},
	},
	{
		ID:          "sala_orientador_rainer",
		Name:        "Sala do Orientador (Rainer)",
		Kind:        KindAdmin,
		Description: "Sala do orientador educacional",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "Segunda porta à direita após descer a rampa",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca da entrada, vire à esquerda",
				"Você verá uma rampa",
				"Desça a rampa",
				"Vire no primeiro corredor à sua direita",
				"A sala do Orientador é a segunda porta à sua direita",
			},
			Landmarks:  []string{"Catraca", "Rampa", "Primeiro corredor à direita"},
			ExtraHints: "Sala do orientador Rainer",
		},
		Keywords: []string{"sala do orientador", "orientador rainer"},
	},
	{
		ID:          "senai_lab",
		Name:        "SENAI LAB",
		Kind:        KindLab,
		Description: "Laboratório SENAI",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "À direita após descer a rampa e virar no corredor",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca de entrada, siga à esquerda",
				"Você encontrará uma rampa",
				"Desça a rampa até a escada",
				"Ao chegar ao final, vire à direita no corredor",
				"O SENAI LAB estará logo à sua direita",
			},
			Landmarks: []string{"Catraca", "Rampa", "Escada"},
		},
		Keywords: []string{"senai lab", "senailab"},
	},
	{
		ID:          "uplab",
		Name:        "UPLAB",
		Kind:        KindLab,
		Description: "Laboratório UPLAB",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "À esquerda após descer a rampa e virar no corredor",
		},
		Navigation: Navigation{
			Steps: []string{
				"Após passar pela catraca de entrada, siga à esquerda",
				"Você encontrará uma rampa",
				"Desça até a escada",
				"Ao chegar ao final, vire à direita no corredor",
				"O UPLAB estará à sua esquerda",
			},
			Landmarks: []string{"Catraca", "Rampa", "Escada"},
		},
		Keywords: []string{"uplab"},
	},
	{
		ID:          "oficina",
		Name:        "Oficina",
		Kind:        KindLab,
		Description: "Oficina de práticas",
		Location: Location{
			Building:  "Principal",
			Floor:     "1º Andar",
			Reference: "À direita após a curva no corredor",
		},
		Navigation: Navigation{
			Steps: []string{
				"Após passar pela catraca de entrada, siga à esquerda",
				"Você encontrará uma rampa",
				"Desça até a escada",
				"Ao chegar ao final, vire à direita no corredor",
				"A oficina estará à sua direita, logo após a curva",
			},
			Landmarks: []string{"Catraca", "Rampa", "Escada", "Curva"},
		},
		Keywords: []string{"oficina de praticas", "oficina"},
	},
	{
		ID:          "sala_diretor_marcio",
		Name:        "Sala do Diretor Márcio Marinho",
		Kind:        KindAdmin,
		Description: "Sala do Diretor de Unidade de Formação Profissional",
		Location: Location{
			Building:  "Principal",
			Floor:     "Térreo",
			Reference: "Primeira porta à direita após descer a rampa e virar no corredor",
		},
		Navigation: Navigation{
			Steps: []string{
				"Ao passar pela catraca de entrada, siga à esquerda até encontrar uma rampa",
				"Desça a rampa até o final, onde há uma escada",
				"Ao chegar ao fim da escada, vire à esquerda no corredor e, logo em seguida, à direita",
				"A sala do diretor é a primeira porta à direita",
			},
			Landmarks:  []string{"Catraca", "Rampa", "Escada"},
			ExtraHints: "Sala do Diretor Márcio Vieira Marinho",
		},
		Keywords: []string{"sala do diretor", "direcao", "diretor marcio"},
	},
}
