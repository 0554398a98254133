package routes

import (
	"net/http"

	"corkboard/app/config"
	"corkboard/app/controllers"
	"corkboard/app/middleware"
	"corkboard/app/monitoring"
	"corkboard/app/repositories"
	"corkboard/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the badger-backed board onto its HTTP surface
func SetupRoutes(db *badger.DB, cfg *config.Config) http.Handler {
	userRepo := repositories.NewBadgerUserRepository(db)
	threadRepo := repositories.NewBadgerThreadRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	return SetupRoutesWithRepos(userRepo, threadRepo, postRepo, cfg.SessionSecret)
}

// SetupRoutesWithRepos wires the board against any repository
// implementations; tests pass mocks or in-memory badger stores here.
func SetupRoutesWithRepos(
	userRepo repositories.UserRepository,
	threadRepo repositories.ThreadRepository,
	postRepo repositories.PostRepository,
	sessionSecret string,
) http.Handler {
	store := sessions.NewCookieStore([]byte(sessionSecret))

	userService := services.NewUserService(userRepo)
	threadService := services.NewThreadService(threadRepo, postRepo)
	postService := services.NewPostService(postRepo)

	auth := controllers.NewAuthController(userService, store)
	threads := controllers.NewThreadController(threadService)
	posts := controllers.NewPostController(postService)

	router := mux.NewRouter()

	// Public surface
	router.HandleFunc("/register", auth.Register).Methods("POST")
	router.HandleFunc("/login", auth.Login).Methods("POST")
	router.HandleFunc("/", threads.Index).Methods("GET")
	router.HandleFunc("/thread/{id:[0-9]+}", threads.Show).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Session-gated surface
	requireLogin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireLogin(h)
	}
	router.Handle("/logout", requireLogin(auth.Logout)).Methods("GET")
	router.Handle("/create_thread", requireLogin(threads.Create)).Methods("POST")
	router.Handle("/post_to_thread/{id:[0-9]+}", requireLogin(posts.Reply)).Methods("POST")
	router.Handle("/edit/{id:[0-9]+}", requireLogin(posts.Edit)).Methods("GET")
	router.Handle("/update/{id:[0-9]+}", requireLogin(posts.Update)).Methods("POST")
	router.Handle("/delete/{id:[0-9]+}", requireLogin(posts.Delete)).Methods("GET", "POST")

	var handler http.Handler = router
	handler = middleware.ResolveActor(store)(handler)
	handler = monitoring.InstrumentHandler(handler)
	handler = middleware.Logger(handler)
	handler = middleware.Recoverer(handler)
	return handler
}
