package resolve

import "strings"

// upstairsRoutes maps upper-floor triggers to ready navigation answers.
// These take precedence over the keyword scoring so upper-floor room
// numbers never collide with ground-floor records.
var upstairsRoutes = []struct {
	triggers []string
	answer   string
}{
	{[]string{"334"},
		"Após subir pela Escada Principal, vire à esquerda e siga reto. Você verá um relógio — caminhe em direção a ele.\n\n" +
			"- O Laboratório de Comandos e Acionamentos (334) é a sala logo à frente à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"332"},
		"Subindo pela escada principal, você verá o corredor à esquerda. Pegue esse corredor.\n\n" +
			"- A última sala à direita no final do corredor é o Laboratório de Eletrônica Geral (332).\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"331"},
		"Depois de subir pela Escada Principal, vire à esquerda e continue andando.\n\n" +
			"- O Laboratório de Pneumática (331) estará logo à frente — é a penúltima sala do lado direito.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"328"},
		"Após subir pela escada principal e entrar no corredor à esquerda, siga em frente.\n\n" +
			"- O Lab. de Hidráulica (328) fica ao lado da Coordenação, no lado direito.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"326"},
		"Suba pela escada principal e vire à esquerda no corredor. Vá andando até quase o final.\n\n" +
			"- A Sala de Coordenação (326) fica ao lado do banheiro masculino, do lado direito.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"315"},
		"Suba a Escada Principal e vire à esquerda no corredor.\n\n" +
			"- A Sala 315 (Informática II – 40 lugares) é a primeira porta à direita, antes do banheiro masculino.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"321"},
		"Suba pela Escada Principal e vire à esquerda no corredor.\n\n" +
			"- A segunda porta à direita são as salas de vidro — a Sala 321 (Informática VII – 20 lugares).\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"319"},
		"Suba pela Escada Principal e vire à esquerda no corredor.\n\n" +
			"- A primeira porta à direita é uma das salas de vidro — a Sala 319 (Informática VI – 20 lugares), ao lado da 321.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"318"},
		"Suba a escada principal e vire à esquerda no corredor.\n\n" +
			"- O Servidor Educacional (318) fica à direita, ao lado do Banheiro Feminino.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"320"},
		"Suba pela escada principal e vire à esquerda no corredor.\n\n" +
			"- O Lab. III de Informática/CAD (320) é a primeira porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"322"},
		"Suba pela escada principal e vire à esquerda no corredor.\n\n" +
			"- O Lab. IV de Informática/CAD (322) é a segunda porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"324"},
		"Suba pela escada principal e vire à esquerda no corredor.\n\n" +
			"- O Lab. V de Informática/CAD (324) é a terceira porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"cst", "prepar"},
		"Depois de subir a escada principal, vire à direita no corredor e siga reto.\n\n" +
			"- A Sala de Preparação CST fica ao lado dos banheiros femininos, à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"316"},
		"Suba pela Escada Principal — à sua frente estão os banheiros femininos e acessíveis (316, 314 e 313).\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"314"},
		"Suba pela Escada Principal — à sua frente estão os banheiros femininos e acessíveis (316, 314 e 313).\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"313"},
		"Suba pela Escada Principal — à sua frente estão os banheiros femininos e acessíveis (316, 314 e 313).\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"308"},
		"Subindo pela escada principal, vire à direita e siga reto pelo corredor até a 'rampa'; desça-a.\n\n" +
			"- A Sala de Desenho Técnico (308) é a primeira do lado esquerdo.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"307"},
		"Depois de subir pela escada principal, vire à direita, siga em frente e desça a 'rampa'.\n\n" +
			"- O Lab. de Projetos (307) é a segunda sala à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"305"},
		"Suba pela escada principal e vire à direita no corredor. Vá até o final e vire à direita.\n\n" +
			"- O Auditório (305) fica no início do corredor, do lado direito.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"306"},
		"Suba pela escada principal e vire à direita no corredor. Vá até o final, virando à direita.\n\n" +
			"- A Sala 306 é a primeira porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"304"},
		"Suba pela escada principal e vire à direita no corredor. Vá até o final, virando à direita.\n\n" +
			"- A Sala 304 é a segunda porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"330"},
		"Suba pela escada principal e vire à direita no corredor. Vá até o final, virando à direita.\n\n" +
			"- O Lab. de Robótica (330) fica adiante nesse segmento.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"323"},
		"Suba pela escada principal e vire à esquerda.\n\n" +
			"- A Sala 323 é a quarta porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
	{[]string{"327"},
		"Suba pela escada principal e vire à esquerda.\n\n" +
			"- O Laboratório de Comandos Lógicos Programáveis (327) é a quarta porta à esquerda.\n\n" +
			"Qualquer dúvida, estou à disposição!"},
}

// upstairsRoute returns the prepared answer when every trigger of a
// route appears in the normalized query.
func upstairsRoute(norm string) (string, bool) {
	for _, route := range upstairsRoutes {
		matched := true
		for _, t := range route.triggers {
			if !strings.Contains(norm, t) {
				matched = false
				break
			}
		}
		if matched {
			return route.answer, true
		}
	}
	return "", false
}
