package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"socialgraph/database"
	"socialgraph/graph"
	"socialgraph/router"
)

func main() {
	// Get key-value in .env file
	godotenv.Load()

	store, err := database.New()
	if err != nil {
		panic(err)
	}
	defer store.Close()

	if err := store.Seed(); err != nil {
		panic(err)
	}

	handler := router.New(store, graph.New(store))

	// Create routes
	http.HandleFunc("/", handler.Index)
	http.HandleFunc("/graphql", handler.GraphQL)
	http.HandleFunc("/users/", handler.Users)
	http.HandleFunc("/profiles/", handler.Profiles)
	http.HandleFunc("/posts/", handler.Posts)
	http.HandleFunc("/member-types/", handler.MemberTypes)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Server is starting on port", port)

	// Create web server
	server := &http.Server{
		Addr:              ":" + port,
		ReadHeaderTimeout: 3 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
