package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"corkboard/app/middleware"
	"corkboard/app/models"
	"corkboard/app/monitoring"
	"corkboard/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Reply appends a post to a thread
func (pc *PostController) Reply(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.ActorID(r)

	vars := mux.Vars(r)
	threadID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	fields, err := decodeFields(r, "content")
	if err != nil {
		refuse(w, r, services.ErrEmptyContent, threadPath(threadID))
		return
	}

	post, err := pc.postService.Reply(actorID, threadID, fields["content"])
	if err != nil {
		refuse(w, r, err, threadPath(threadID))
		return
	}
	monitoring.PostsCreated.Inc()

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, post)
	} else {
		http.Redirect(w, r, threadPath(threadID), http.StatusSeeOther)
	}
}

// Edit returns the post for the author's edit form. Refused unless the
// actor owns the post.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.ActorID(r)

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPostForEdit(actorID, id)
	if err != nil {
		refuse(w, r, err, "/")
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Update replaces a post's content. Refused unless the actor owns the post.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.ActorID(r)

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	fields, err := decodeFields(r, "content")
	if err != nil {
		refuse(w, r, services.ErrEmptyContent, "/")
		return
	}

	post, err := pc.postService.UpdatePost(actorID, id, fields["content"])
	if err != nil {
		refuse(w, r, err, "/")
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, post)
	} else {
		http.Redirect(w, r, threadPath(post.ThreadID), http.StatusSeeOther)
	}
}

// Delete removes a post. Deleting a thread's opening post deletes the whole
// thread; the response says which happened.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.ActorID(r)

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	outcome, post, err := pc.postService.DeletePost(actorID, id)
	if err != nil {
		refuse(w, r, err, "/")
		return
	}

	if outcome == models.ThreadDeleted {
		monitoring.ThreadsDeleted.Inc()
	} else {
		monitoring.PostsDeleted.Inc()
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, map[string]string{"outcome": outcome.String()})
		return
	}
	if outcome == models.ThreadDeleted {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, threadPath(post.ThreadID), http.StatusSeeOther)
	}
}

func threadPath(id int) string {
	return fmt.Sprintf("/thread/%d", id)
}
