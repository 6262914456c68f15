package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"

	"wedding-planner-backend/checklist"
	"wedding-planner-backend/database"
	"wedding-planner-backend/firebase"
	"wedding-planner-backend/flows"
	"wedding-planner-backend/utilities"
)

var (
	db              *sql.DB
	firestoreClient *firestore.Client
	taskStore       *firebase.ChecklistStore
	coordinator     *checklist.Coordinator
)

// chave de contexto não exportada para a identidade do chamador
type contextKey string

const identityKey contextKey = "identity"

// InitDependencies injeta as dependências compartilhadas dos handlers e
// monta o coordenador do fluxo do checklist.
func InitDependencies(dbConn *sql.DB, fsClient *firestore.Client, mailer *flows.EmailService) {
	utilities.LogInfo("Inicializando dependências dos handlers")
	db = dbConn
	firestoreClient = fsClient
	taskStore = firebase.NewChecklistStore(fsClient)
	coordinator = checklist.NewCoordinator(taskStore, mailer, &userDirectory{db: dbConn})
}

// AuthMiddleware verifica o ID Token do Firebase e coloca a identidade
// resolvida {id, email, name} no contexto da requisição.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("header de autorização ausente"), "Autenticação falhou")
			respondError(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		verifiedToken, err := firebase.VerifyUserToken(r.Context(), tokenString)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		email, _ := verifiedToken.Claims["email"].(string)
		name, _ := verifiedToken.Claims["name"].(string)
		identity := checklist.Identity{
			ID:    verifiedToken.UID,
			Email: email,
			Name:  name,
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// identityFromContext recupera a identidade colocada pelo AuthMiddleware.
func identityFromContext(ctx context.Context) (checklist.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(checklist.Identity)
	return identity, ok
}

// userDirectory resolve e-mails de usuários: primeiro pela tabela espelho no
// PostgreSQL, com fallback para o Firebase Auth quando o espelho não tem o
// registro (usuário que nunca finalizou login neste backend).
type userDirectory struct {
	db *sql.DB
}

func (d *userDirectory) LookupEmail(ctx context.Context, userID string) (string, error) {
	email, err := database.GetUserEmail(ctx, d.db, userID)
	if err == nil && email != "" {
		return email, nil
	}

	utilities.LogDebug("Usuário %s não encontrado no espelho local; consultando Firebase Auth", userID)
	record, authErr := firebase.GetUserByUID(ctx, userID)
	if authErr != nil {
		return "", fmt.Errorf("erro ao resolver e-mail do usuário %s: %w", userID, authErr)
	}
	return record.Email, nil
}
