package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"wedding-planner-backend/handlers"
	"wedding-planner-backend/utilities"
)

func LoadRoutes() {
	r := mux.NewRouter()

	// Middleware de logging global em todas as rotas
	r.Use(handlers.LoggingMiddleware)

	// --- Rotas de Autenticação ---
	r.HandleFunc("/auth/finalize-login", handlers.FinalizeFirebaseLoginHandler).Methods("POST")

	// --- Rotas de Usuário ---
	r.HandleFunc("/user/info", handlers.AuthMiddleware(handlers.UserHandler)).Methods("GET")

	// --- Rotas do Checklist (protegidas) ---
	r.HandleFunc("/checklist/list", handlers.AuthMiddleware(handlers.ListChecklistHandler)).Methods("GET")
	r.HandleFunc("/checklist/create", handlers.AuthMiddleware(handlers.CreateChecklistHandler)).Methods("POST")
	r.HandleFunc("/checklist/info/{task_id}", handlers.AuthMiddleware(handlers.GetChecklistHandler)).Methods("GET")
	r.HandleFunc("/checklist/update/{task_id}", handlers.AuthMiddleware(handlers.UpdateChecklistHandler)).Methods("PUT")
	r.HandleFunc("/checklist/delete/{task_id}", handlers.AuthMiddleware(handlers.DeleteChecklistHandler)).Methods("DELETE")

	// --- Rotas de Convidados (protegidas) ---
	r.HandleFunc("/guests/list", handlers.AuthMiddleware(handlers.ListGuestsHandler)).Methods("GET")
	r.HandleFunc("/guests/create", handlers.AuthMiddleware(handlers.CreateGuestHandler)).Methods("POST")
	r.HandleFunc("/guests/info/{guest_id}", handlers.AuthMiddleware(handlers.GetGuestHandler)).Methods("GET")
	r.HandleFunc("/guests/update/{guest_id}", handlers.AuthMiddleware(handlers.UpdateGuestHandler)).Methods("PUT")
	r.HandleFunc("/guests/delete/{guest_id}", handlers.AuthMiddleware(handlers.DeleteGuestHandler)).Methods("DELETE")

	// --- Rotas de Fornecedores (protegidas) ---
	r.HandleFunc("/vendors/list", handlers.AuthMiddleware(handlers.ListVendorsHandler)).Methods("GET")
	r.HandleFunc("/vendors/create", handlers.AuthMiddleware(handlers.CreateVendorHandler)).Methods("POST")
	r.HandleFunc("/vendors/info/{vendor_id}", handlers.AuthMiddleware(handlers.GetVendorHandler)).Methods("GET")
	r.HandleFunc("/vendors/update/{vendor_id}", handlers.AuthMiddleware(handlers.UpdateVendorHandler)).Methods("PUT")
	r.HandleFunc("/vendors/delete/{vendor_id}", handlers.AuthMiddleware(handlers.DeleteVendorHandler)).Methods("DELETE")

	// --- Rotas do Orçamento (protegidas) ---
	r.HandleFunc("/budget/list", handlers.AuthMiddleware(handlers.ListBudgetItemsHandler)).Methods("GET")
	r.HandleFunc("/budget/create", handlers.AuthMiddleware(handlers.CreateBudgetItemHandler)).Methods("POST")
	r.HandleFunc("/budget/info/{item_id}", handlers.AuthMiddleware(handlers.GetBudgetItemHandler)).Methods("GET")
	r.HandleFunc("/budget/update/{item_id}", handlers.AuthMiddleware(handlers.UpdateBudgetItemHandler)).Methods("PUT")
	r.HandleFunc("/budget/delete/{item_id}", handlers.AuthMiddleware(handlers.DeleteBudgetItemHandler)).Methods("DELETE")

	// Configuração do CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configurando CORS com origens permitidas: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado na porta %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
