package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/users"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/config"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/security"
)

// adduser provisions a staff account. There is no self-service signup;
// operators run this against the target environment's database.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "adduser"})

	_ = godotenv.Load()

	email := flag.String("email", "", "staff email address")
	fullName := flag.String("name", "", "staff full name")
	password := flag.String("password", "", "initial password")

	flag.Parse()

	if *email == "" || *fullName == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "missing required flags: -email, -name, -password")
		os.Exit(1)
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "adduser",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env":   cfg.App.Env,
		"email": *email,
	})

	hash, err := security.HashPassword(*password, cfg.Password)
	requireResource(ctx, logg, "password hash", err)

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	user, err := users.NewRepository(dbClient.DB()).Create(ctx, users.CreateUserDTO{
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		FullName:     strings.TrimSpace(*fullName),
		PasswordHash: hash,
	})
	if err != nil {
		logg.Error(ctx, "failed to create user", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "user_id", user.ID.String())
	logg.Info(ctx, "staff user created")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
