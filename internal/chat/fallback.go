package chat

import (
	"fmt"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// fallbackAnswer picks the closing answer when neither the rules nor the
// delegate produced one. The keyword buckets cover the most frequent
// question groups so even the degraded path stays on topic; buckets are
// checked in order and the first match wins.
func fallbackAnswer(norm string) string {
	switch {
	case textnorm.ContainsAny(norm, "obrigado", "obrigada", "valeu", "agradeco", "perfeito", "otimo", "show", "blz", "ta bom"):
		return knowledge.Canned(knowledge.AnswerThanks)

	case textnorm.ContainsAny(norm, "tchau", "ate mais", "ate logo", "ate breve", "falou", "flw"):
		return knowledge.Canned(knowledge.AnswerFarewell)

	case textnorm.ContainsAny(norm, "quem e vc", "quem e voce", "quem voce", "quem vc"):
		return knowledge.Canned(knowledge.AnswerBotName)

	case textnorm.ContainsAny(norm, "onde", "fica", "localizacao", "endereco"):
		return knowledge.Canned(knowledge.AnswerAddress)

	case textnorm.ContainsAny(norm, "telefone", "fone", "contato", "ligar"):
		return fmt.Sprintf("Para entrar em contato com o SENAI São Carlos:\n\n"+
			"- Telefone/WhatsApp: %s\n- Email: %s\n\n"+
			"Horário de atendimento: %s.\n\nPosso te ajudar com mais alguma informação? 😊",
			knowledge.Phone, knowledge.Email, knowledge.OpeningHours)

	case textnorm.ContainsAny(norm, "inscricao", "matricula", "inscrever"):
		return fmt.Sprintf("Para se inscrever nos cursos do SENAI São Carlos:\n\n"+
			"1. Entre em contato pelo telefone %s\n"+
			"2. Ou envie um email para %s\n"+
			"3. Ou visite a secretaria da unidade\n\n"+
			"Horário de atendimento: %s.", knowledge.Phone, knowledge.Email, knowledge.OpeningHours)

	case textnorm.ContainsAny(norm, "preco", "valor", "custo", "mensalidade", "quanto custa"):
		return fmt.Sprintf("Os valores dos cursos variam conforme o tipo e a duração:\n\n"+
			"- Cursos de Aprendizagem Industrial: gratuitos (em parceria com empresas)\n"+
			"- Cursos Técnicos: valores variam conforme o curso\n"+
			"- Cursos de Qualificação: valores a partir de R$ 200/mês\n\n"+
			"Para o valor do curso que você tem interesse, ligue %s ou escreva para %s.",
			knowledge.Phone, knowledge.Email)

	case textnorm.ContainsAny(norm, "horario", "abre", "fecha", "funciona"):
		return fmt.Sprintf("Horários de funcionamento do SENAI São Carlos:\n\n"+
			"- Secretaria e recepção: %s\n"+
			"- Biblioteca: %s\n\n"+
			"Telefone: %s\nEmail: %s",
			knowledge.OpeningHours, knowledge.LibraryHours, knowledge.Phone, knowledge.Email)

	case textnorm.ContainsAny(norm, "beneficio", "beneficios", "vantagens", "por que estudar", "porque estudar", "por que senai", "porque senai"):
		return fmt.Sprintf("Estudar no SENAI São Carlos traz diversos benefícios:\n\n"+
			"- Parcerias com empresas da região (estágios e oportunidades)\n"+
			"- Laboratórios modernos e bem equipados para aulas práticas\n"+
			"- Alta empregabilidade dos alunos formados\n"+
			"- Docentes com experiência na indústria e projetos reais\n\n"+
			"Para saber mais, ligue %s ou escreva para %s.", knowledge.Phone, knowledge.Email)
	}

	return fmt.Sprintf("Hmm, não tenho uma resposta pronta para isso. 😅\n\n"+
		"Posso ajudar com informações sobre cursos, horários de aula, localização de salas e setores, "+
		"funcionários e contatos do SENAI São Carlos. Tente reformular a pergunta ou, se preferir, "+
		"fale com a secretaria: %s ou %s.", knowledge.Phone, knowledge.Email)
}
