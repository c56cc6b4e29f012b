package classify

import (
	"strings"

	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

var (
	scopeKeywords = []string{
		"senai", "sao carlos", "escola", "curso", "cursos",
		"tecnico", "qualificacao", "inscricao", "matricula", "horario",
		"preco", "valor", "custo", "mensalidade", "biblioteca",
		"refeitorio", "secretaria", "laboratorio",
		"estagio", "emprego", "vaga", "parceria", "parcerias",
		"empresa", "empresas", "parceiro", "parceiros", "parceira", "parceiras",
		"localizacao", "endereco", "telefone", "email", "contato",
		"aluno", "alunos", "competicao", "competicoes", "competi",
		"tecnologia", "tecnologicas", "evento", "eventos",
		"sala", "banheiro", "banheiros", "hidrante", "hidrantes", "extintor", "extintores",
		"alarme", "bomba", "escada", "elevador",
		"comandos", "eletronica",
	}
	institutionKeywords = []string{"senai", "sena", "antonio adolpho lobbe"}
	scopeGreetings      = []string{"ola", "oi", "bom dia", "boa tarde", "boa noite", "quem e vc", "quem e voce"}
	interrogatives      = []string{
		"como", "onde", "quando", "horas", "horario", "inscricao",
		"curso", "cursos", "estagio", "matricula", "valor", "preco",
	}

	// Domain vocabulary for the fuzzy scope heuristic.
	scopeVocabulary = []string{
		"senai sao carlos", "senai", "escola antonio adolpho lobbe", "unidade",
		"refeitorio", "biblioteca", "secretaria", "laboratorio", "mecanica", "eletronica", "comandos",
		"banheiro", "hidrante", "extintor", "alarme de incendio", "bomba de incendio", "escada", "elevador",
		"curso", "cursos", "inscricao", "matricula", "horario", "qualificacao", "aprendizagem",
		"telefone", "email", "contato",
		"empresas parceiras", "estagio", "estagios", "coordenacao de estagio", "setor de apoio",
	}
)

// InScope reports whether the message plausibly concerns the school.
// The gate is deliberately permissive: keywords, greetings, question
// marks with interrogatives, and finally a fuzzy token-set pass against
// the domain vocabulary.
func InScope(message string, scorer fuzzy.Scorer, th config.Thresholds) bool {
	norm := textnorm.Normalize(message)

	if textnorm.ContainsAny(norm, institutionKeywords...) {
		return true
	}
	if textnorm.ContainsAny(norm, scopeKeywords...) {
		return true
	}
	if textnorm.ContainsAny(norm, scopeGreetings...) {
		return true
	}
	if strings.Contains(message, "?") {
		return true
	}
	if textnorm.ContainsAny(norm, interrogatives...) {
		return true
	}

	for _, term := range scopeVocabulary {
		if scorer.TokenSetRatio(norm, term) >= th.Scope {
			return true
		}
	}

	return false
}
