package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"getitdone/models"
	"getitdone/sessions"
	"getitdone/store"
)

// Index renders the signed-in user's task list. A POST first creates a task
// from the "task" form field, then redirects back here so a refresh does not
// resubmit the form.
func Index(w http.ResponseWriter, r *http.Request, db store.Store, sm sessions.Manager) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	email := currentEmail(r, sm)
	if email == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	owner, err := db.UserByEmail(r.Context(), email)
	if err != nil {
		log.Println("Error looking up owner:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodPost {
		name := r.FormValue("task")
		if _, err := db.CreateTask(r.Context(), owner.ID, name); err != nil {
			log.Println("Error creating task:", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	open, done, err := db.TasksByOwner(r.Context(), owner.ID)
	if err != nil {
		log.Println("Error retrieving tasks for user:", email, ":", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "tasks.html", models.PageData{
		Title:          "Get It Done!",
		Tasks:          open,
		CompletedTasks: done,
		Email:          email,
		Flash:          popFlash(r, sm),
	})
}

// DeleteTask marks the task named by the "task-id" form field completed and
// redirects to the list. The row stays in the store.
// TODO: check the task belongs to the signed-in user before completing it;
// right now any authenticated user can complete any task by id.
func DeleteTask(w http.ResponseWriter, r *http.Request, db store.TaskStore) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	taskID, err := strconv.Atoi(r.FormValue("task-id"))
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	if err := db.CompleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Println("Error completing task:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
