package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Layout
	message.SetString(lang, "Portfolio", "Portfólio")
	message.SetString(lang, "PORTFOLIO", "PORTFÓLIO")
	message.SetString(lang, "Switch to dark theme", "Mudar para o tema escuro")
	message.SetString(lang, "Switch to light theme", "Mudar para o tema claro")

	// Listing
	message.SetString(lang, "All", "Todos")
	message.SetString(lang, "No projects found", "Nenhum projeto encontrado")
	message.SetString(lang, "Error: %s", "Erro: %s")
	message.SetString(lang, "Error while getting projects", "Erro ao carregar os projetos")
	message.SetString(lang, "Unknown", "Desconhecida")

	// Detail
	message.SetString(lang, "Loading...", "Carregando...")
	message.SetString(lang, "Description", "Descrição")
	message.SetString(lang, "Category", "Categoria")
	message.SetString(lang, "GitHub", "GitHub")
	message.SetString(lang, "Demo Video", "Vídeo de demonstração")
	message.SetString(lang, "Back to projects", "Voltar aos projetos")
	message.SetString(lang, "Project not found", "Projeto não encontrado")
	message.SetString(lang, "Error while fetching project", "Erro ao carregar o projeto")
	message.SetString(lang, "Error while fetching categories", "Erro ao carregar as categorias")
	message.SetString(lang, "Error while fetching project; Error while fetching categories",
		"Erro ao carregar o projeto; Erro ao carregar as categorias")
	message.SetString(lang, "Invalid project id", "Identificador de projeto inválido")
}
