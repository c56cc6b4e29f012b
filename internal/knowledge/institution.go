package knowledge

// Institution facts used across answers and prompts.
const (
	InstitutionName  = "Escola SENAI São Carlos – \"Antonio A. Lobbe\""
	InstitutionChain = "SENAI São Paulo"
	Address          = "Rua Cândido Padim, 25 – Vila Prado, São Carlos/SP, CEP 13574-320"
	Phone            = "(16) 2106-8700"
	Email            = "saocarlos@sp.senai.br"
	Website          = "https://sp.senai.br/unidade/saocarlos/"
	OpeningHours     = "Segunda a sexta-feira, das 8h às 20h, e aos sábados, das 8h às 13h e das 14h às 16h"
	LibraryHours     = "Segunda a quinta-feira das 8h30 às 13h30 e das 15h às 22h, às sextas-feiras das 8h30 às 13h30 e das 15h às 21h, e aos sábados das 8h às 12h15 e das 12h30 às 14h15"
	FoundingYear     = "1958"
)

var contacts = []Contact{
	{
		ID:    "secretaria",
		Name:  "Secretaria",
		Phone: Phone,
		Email: Email,
		Hours: "Segunda a Sexta-feira, das 8h às 20h; Sábados, das 8h às 13h e das 14h às 16h",
	},
	{
		ID:    "coordenacao_cursos",
		Name:  "Coordenação de Cursos",
		Phone: Phone,
		Email: Email,
		Hours: "Segunda a Sexta-feira, das 8h às 20h",
	},
	{
		ID:    "atendimento_empresas",
		Name:  "Atendimento a Empresas",
		Phone: Phone,
		Email: Email,
		Hours: "Segunda a Sexta-feira, das 8h às 20h",
	},
	{
		ID:    "biblioteca",
		Name:  "Biblioteca",
		Hours: "Segunda a Quinta, das 8h30 às 13h30 e das 15h às 22h; Sextas, das 8h30 às 13h30 e das 15h às 21h; Sábados, das 8h às 12h15 e das 12h30 às 14h15",
	},
}
