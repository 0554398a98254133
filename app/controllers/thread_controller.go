package controllers

import (
	"net/http"
	"strconv"

	"corkboard/app/middleware"
	"corkboard/app/monitoring"
	"corkboard/app/services"

	"github.com/gorilla/mux"
)

// ThreadController handles HTTP requests for threads
type ThreadController struct {
	threadService *services.ThreadService
}

// NewThreadController creates a new ThreadController
func NewThreadController(threadService *services.ThreadService) *ThreadController {
	return &ThreadController{threadService: threadService}
}

// Index lists all threads, newest first
func (tc *ThreadController) Index(w http.ResponseWriter, r *http.Request) {
	threads, err := tc.threadService.ListThreads()
	if err != nil {
		refuse(w, r, err, "/")
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"threads": threads})
}

// Create handles creating a thread together with its opening post
func (tc *ThreadController) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.ActorID(r)

	fields, err := decodeFields(r, "title", "content")
	if err != nil {
		refuse(w, r, services.ErrEmptyTitle, "/")
		return
	}

	thread, err := tc.threadService.CreateThread(actorID, fields["title"], fields["content"])
	if err != nil {
		refuse(w, r, err, "/")
		return
	}
	monitoring.ThreadsCreated.Inc()
	monitoring.PostsCreated.Inc()

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, thread)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Show displays a single thread with its posts in reply order
func (tc *ThreadController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	thread, err := tc.threadService.GetThread(id)
	if err != nil {
		refuse(w, r, err, "/")
		return
	}
	sendJSON(w, http.StatusOK, thread)
}
