package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"ember_server/middleware"
	"ember_server/routes"
	"ember_server/services"
	"ember_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	swipeService := &services.SwipeService{Dynamo: dynamoService}
	userService := &services.UserService{Dynamo: dynamoService, Swipes: swipeService}
	matchService := &services.MatchService{
		Dynamo: dynamoService,
		Swipes: swipeService,
		Users:  userService,
		TTL:    matchTTL(),
	}
	chatService := &services.ChatService{Dynamo: dynamoService, Matches: matchService}
	sweeperService := &services.SweeperService{Dynamo: dynamoService}
	faceService := services.NewFaceServiceFromEnv()
	verificationService := &services.VerificationService{Users: userService, Face: faceService}
	s3Service, err := services.NewS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Real-time chat fan-out
	socketServer := socket.NewServer()
	go socketServer.IO.Serve()
	defer socketServer.IO.Close()

	// Hourly expiry sweep, also reachable via POST /api/matches/sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeperService.Run(ctx, sweepInterval())

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
		fmt.Fprintln(w, "Welcome to Ember")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer.IO)

	// Authenticated API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth)
	routes.RegisterUserRoutes(api, userService)
	routes.RegisterSwipeRoutes(api, matchService)
	routes.RegisterMatchRoutes(api, matchService, sweeperService)
	routes.RegisterChatRoutes(api, chatService, socketServer)
	routes.RegisterVerificationRoutes(api, verificationService, userService)
	routes.RegisterS3Routes(api, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

// matchTTL reads MATCH_TTL_HOURS, defaulting to 24h.
func matchTTL() time.Duration {
	if hours, err := strconv.Atoi(os.Getenv("MATCH_TTL_HOURS")); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return services.DefaultMatchTTL
}

// sweepInterval reads SWEEP_INTERVAL_MINUTES, defaulting to hourly.
func sweepInterval() time.Duration {
	if minutes, err := strconv.Atoi(os.Getenv("SWEEP_INTERVAL_MINUTES")); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return time.Hour
}
