package handlers

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"getitdone/models"
)

// TemplateDir is where the HTML templates live, relative to the working
// directory of the process. Tests point it at the repository copy.
var TemplateDir = "./ui/html"

func render(w http.ResponseWriter, name string, data models.PageData) {
	tmpl, err := template.ParseFiles(filepath.Join(TemplateDir, name))
	if err != nil {
		log.Println("Error loading template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		log.Println("Error rendering template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
