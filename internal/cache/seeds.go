package cache

// seedOrder fixes the iteration order for substring matching, most
// specific greetings first.
var seedOrder = []string{
	"bom dia",
	"boa tarde",
	"boa noite",
	"ola",
	"oi",
	"obrigado",
	"obrigada",
	"tchau",
	"ate mais",
	"qual seu nome",
	"quem é você",
	"endereco",
	"telefone",
	"horario",
	"cursos",
}

// seedAnswers are the canned responses for the most frequent questions.
var seedAnswers = map[string]string{
	"ola":           "Olá! Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"oi":            "Oi! Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"bom dia":       "Bom dia! Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"boa tarde":     "Boa tarde! Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"boa noite":     "Boa noite! Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"obrigado":      "De nada! Fico feliz em ajudar. Estou sempre à disposição para esclarecer suas dúvidas sobre o SENAI São Carlos.",
	"obrigada":      "De nada! Fico feliz em ajudar. Estou sempre à disposição para esclarecer suas dúvidas sobre o SENAI São Carlos.",
	"tchau":         "Até mais! Foi um prazer ajudar. Se precisar de mais informações sobre o SENAI São Carlos, é só voltar!",
	"ate mais":      "Até mais! Foi um prazer ajudar. Se precisar de mais informações sobre o SENAI São Carlos, é só voltar!",
	"qual seu nome": "Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"quem é você":   "Sou o Cadu, assistente virtual do SenAI, ferramenta de auxilio para o SENAI São Carlos. Como posso ajudar?",
	"endereco":      "O SENAI São Carlos está localizado na Rua Cândido Padim, 25 - Vila Prado, São Carlos - SP, CEP 13574-320.",
	"telefone":      "O telefone/WhatsApp do SENAI São Carlos é (16) 2106-8700.",
	"horario":       "O horário de funcionamento da secretaria: Segunda a sexta-feira, das 8h às 20h, e aos sábados, das 8h às 13h e das 14h às 16h.",
	"cursos":        "O SENAI São Carlos oferece cursos técnicos, superiores, de aprendizagem industrial e de qualificação. Para informações específicas, entre em contato pelo telefone (16) 2106-8700.",
}
