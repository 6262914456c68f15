package firebase

import (
	"context"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	appOnce sync.Once
	app     *firebase.App
	appErr  error
)

// InitializeFirebase inicializa (uma única vez) o app Firebase a partir do
// arquivo de credenciais apontado por FIREBASE_CREDENTIALS_PATH.
func InitializeFirebase() (*firebase.App, error) {
	appOnce.Do(func() {
		credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
		if credentialsPath == "" {
			appErr = fmt.Errorf("FIREBASE_CREDENTIALS_PATH não está definido nas variáveis de ambiente")
			return
		}

		opt := option.WithCredentialsFile(credentialsPath)
		app, appErr = firebase.NewApp(context.Background(), nil, opt)
	})
	return app, appErr
}

// GetAuthClient retorna o cliente de autenticação do Firebase.
func GetAuthClient() (*auth.Client, error) {
	firebaseApp, err := InitializeFirebase()
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar Firebase: %w", err)
	}
	authClient, err := firebaseApp.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter cliente de Auth: %w", err)
	}
	return authClient, nil
}

// GetFirestoreClient retorna o cliente do Firestore.
func GetFirestoreClient() (*firestore.Client, error) {
	firebaseApp, err := InitializeFirebase()
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar Firebase: %w", err)
	}
	firestoreClient, err := firebaseApp.Firestore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter cliente do Firestore: %w", err)
	}
	return firestoreClient, nil
}
