package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// VerifyUserToken verifica um ID Token do Firebase e retorna o token decodificado.
func VerifyUserToken(ctx context.Context, token string) (*auth.Token, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	verifiedToken, err := client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar token: %w", err)
	}

	return verifiedToken, nil
}

// GetUserByUID busca um usuário do Firebase Auth pelo UID.
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	user, err := client.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

// GetUserByEmail busca um usuário do Firebase Auth pelo e-mail.
func GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	user, err := client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário por e-mail: %w", err)
	}

	return user, nil
}
