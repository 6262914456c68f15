package main

import (
	"log"

	"github.com/joho/godotenv"

	"wedding-planner-backend/database"
	"wedding-planner-backend/firebase"
	"wedding-planner-backend/flows"
	"wedding-planner-backend/handlers"
	"wedding-planner-backend/utilities"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado; usando variáveis de ambiente do sistema")
	}

	utilities.InitLogger()

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	firestoreClient, err := firebase.GetFirestoreClient()
	if err != nil {
		log.Fatalf("Erro ao conectar ao Firestore: %v", err)
	}
	defer firestoreClient.Close()

	mailer := flows.NewEmailServiceFromEnv()

	handlers.InitDependencies(db, firestoreClient, mailer)

	LoadRoutes()
}
