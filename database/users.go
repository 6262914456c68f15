package database

import (
	"context"
	"database/sql"
	"fmt"

	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"
)

// UpsertUser garante que o usuário verificado pelo Firebase exista na tabela
// espelho `users`, atualizando e-mail e nome de exibição em acessos seguintes.
func UpsertUser(ctx context.Context, db *sql.DB, user models.Usuario) error {
	var existingUID string
	err := db.QueryRowContext(ctx,
		"SELECT firebase_uid FROM users WHERE firebase_uid = $1", user.FirebaseUID).
		Scan(&existingUID)

	switch {
	case err == sql.ErrNoRows:
		utilities.LogInfo("Primeiro acesso para UID %s. Criando no PostgreSQL...", user.FirebaseUID)
		_, insertErr := db.ExecContext(ctx,
			"INSERT INTO users (firebase_uid, email, display_name) VALUES ($1, $2, $3)",
			user.FirebaseUID, user.Email, user.DisplayName,
		)
		if insertErr != nil {
			return fmt.Errorf("erro ao inserir usuário no DB: %w", insertErr)
		}
		return nil

	case err != nil:
		return fmt.Errorf("erro ao buscar usuário no DB: %w", err)

	default:
		_, updateErr := db.ExecContext(ctx,
			"UPDATE users SET email = $1, display_name = $2 WHERE firebase_uid = $3",
			user.Email, user.DisplayName, user.FirebaseUID,
		)
		if updateErr != nil {
			return fmt.Errorf("erro ao atualizar usuário no DB: %w", updateErr)
		}
		return nil
	}
}

// GetUser retorna o registro espelho de um usuário pelo Firebase UID.
func GetUser(ctx context.Context, db *sql.DB, firebaseUID string) (*models.Usuario, error) {
	var user models.Usuario
	err := db.QueryRowContext(ctx,
		"SELECT firebase_uid, email, display_name FROM users WHERE firebase_uid = $1", firebaseUID).
		Scan(&user.FirebaseUID, &user.Email, &user.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário %s no DB: %w", firebaseUID, err)
	}
	return &user, nil
}

// GetUserEmail resolve apenas o e-mail de um usuário pelo Firebase UID.
// Retorna sql.ErrNoRows embrulhado quando o usuário não está espelhado.
func GetUserEmail(ctx context.Context, db *sql.DB, firebaseUID string) (string, error) {
	var email string
	err := db.QueryRowContext(ctx,
		"SELECT email FROM users WHERE firebase_uid = $1", firebaseUID).
		Scan(&email)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar e-mail do usuário %s no DB: %w", firebaseUID, err)
	}
	return email, nil
}
