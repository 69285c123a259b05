package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"ttm_server/routes"
	"ttm_server/services"
	"ttm_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize AWS clients
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	services.InitializeS3Client()
	log.Println("AWS clients initialized.")

	// Initialize services
	profileService := &services.PlayerProfileService{Dynamo: dynamoService}
	chatHistoryService := &services.ChatHistoryService{Dynamo: dynamoService}

	// Matchmaking engine + socket gateway
	engine := services.NewMatchmakingService(chatHistoryService)
	gateway := socket.NewServer(engine, profileService)

	go func() {
		if err := gateway.IO.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer gateway.IO.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to TTM")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Socket.io endpoint
	r.PathPrefix("/socket.io/").Handler(gateway.IO)

	// Register routes
	routes.RegisterPlayerProfileRoutes(r, profileService)
	routes.RegisterChatRoutes(r, chatHistoryService)
	routes.RegisterMatchmakingRoutes(r, engine)
	routes.RegisterS3Routes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
