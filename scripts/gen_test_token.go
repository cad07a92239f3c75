package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/clipcast/server/clipcast/tokens"
	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// mints a token pair for a local test user so API endpoints can be
// exercised with curl without going through the Google flow
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	userRepo := users.NewRepository(dbPool)
	tokenRepo := tokens.NewRepository(dbPool)

	const testGoogleSub = "test-user-123"

	user, err := userRepo.FindByGoogleSub(ctx, testGoogleSub)
	if err != nil {
		user, err = userRepo.Create(ctx, &users.CreateUserRequest{
			GoogleSub: testGoogleSub,
			Username:  "test",
			FirstName: "Test",
			LastName:  "User",
			Handle:    "test.user-000000",
			Email:     "test@clipcast.dev",
		})
		if err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}
		fmt.Printf("Created test user %s (ID: %s)\n", user.Email, user.ID)
	} else {
		fmt.Printf("Using existing test user (ID: %s)\n", user.ID)
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.GoogleSub, user.Email, user.Handle)
	if err != nil {
		log.Fatalf("Failed to generate access token: %v", err)
	}

	refreshToken, tokenID, expiresAt, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		log.Fatalf("Failed to generate refresh token: %v", err)
	}

	if err := tokenRepo.Create(ctx, &tokens.RefreshToken{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		log.Fatalf("Failed to record refresh token: %v", err)
	}

	fmt.Printf("\nAccess token:\n%s\n", accessToken)
	fmt.Printf("\nRefresh token:\n%s\n", refreshToken)
	fmt.Printf("\nExport for testing:\nexport TEST_TOKEN=\"%s\"\n", accessToken)
}
