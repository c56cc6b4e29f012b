package schedule

// Weekly timetable for the reference week, keyed by room number. The
// professor and class views in Store are derived from these tables.
var roomTimetables = map[string]Timetable{
	"315": {
		"manhã": {
			"segunda": {
				{Subject: "Lógica de Programação", Professor: "Anderson", Class: "INFO 2025"},
			},
			"quarta": {
				{Subject: "Desenvolvimento Web", Professor: "Anderson", Class: "ADS 2024"},
			},
		},
		"noite": {
			"terça": {
				{Subject: "Banco de Dados", Professor: "Rainer", Class: "ADS 2024"},
			},
			"quinta": {
				{Subject: "Programação Orientada a Objetos", Professor: "Rainer", Class: "ADS 2024"},
			},
		},
	},
	"328": {
		"tarde": {
			"segunda": {
				{Subject: "Hidráulica e Pneumática", Professor: "Claudemir", Class: "MECATRO 2024"},
			},
			"quarta": {
				{Subject: "Hidráulica e Pneumática", Professor: "Claudemir", Class: "MECATRO 2024"},
			},
		},
	},
	"334": {
		"manhã": {
			"terça": {
				{Subject: "Acionamentos Elétricos", Professor: "Marcia", Class: "ELETRO 2025"},
			},
		},
		"noite": {
			"sexta": {
				{Subject: "Comandos Elétricos", Professor: "Marcia", Class: "MECATRO 2024"},
			},
		},
	},
	"223": {
		"manhã": {
			"sábado": {
				{Subject: "Mecânica Automobilística", Professor: "Claudemir", Class: "AUTO 2025"},
			},
		},
	},
}
