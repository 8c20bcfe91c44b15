package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/wishmas/core/internal/adapters/repository"
	"github.com/wishmas/core/internal/application/services"
	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/config"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/infrastructure/logger"
	"github.com/wishmas/core/internal/infrastructure/server"
	"github.com/wishmas/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the WishMas API server",
		Long:  "Start the WishMas API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewAccountCommand creates the account management command
func NewAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
		Long:  "Create and manage login accounts without going through the API",
	}

	createAccountCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new login account",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			displayName, _ := cmd.Flags().GetString("display-name")
			role, _ := cmd.Flags().GetString("role")

			if username == "" || password == "" {
				log.Fatal("Username and password are required")
			}
			if displayName == "" {
				displayName = username
			}

			createAccount(username, password, displayName, role)
		},
	}

	createAccountCmd.Flags().String("username", "", "Login username (required)")
	createAccountCmd.Flags().String("password", "", "Login password (required)")
	createAccountCmd.Flags().String("display-name", "", "Name shown in the UI (defaults to the username)")
	createAccountCmd.Flags().String("role", "user", "Account role (user, parent, developer)")

	accountCmd.AddCommand(createAccountCmd)
	return accountCmd
}

// NewListsCommand creates the wish list maintenance command
func NewListsCommand() *cobra.Command {
	listsCmd := &cobra.Command{
		Use:   "lists",
		Short: "Wish list maintenance commands",
	}

	listsCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete every sent wish list",
		Long:  "Delete every sent wish list from the store. Irreversible; typically run after Christmas.",
		Run: func(cmd *cobra.Command, args []string) {
			resetLists()
		},
	})

	return listsCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print WishMas version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("WishMas Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := filestore.Open(cfg.Storage, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open file store", "error", err)
	}
	defer store.Close()

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting WishMas API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", cfg.Storage.DataDir,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func createAccount(username, password, displayName, role string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := filestore.Open(cfg.Storage, appLogger)
	if err != nil {
		log.Fatalf("Failed to open file store: %v", err)
	}
	defer store.Close()

	accountRole := entities.Role(role)
	if !accountRole.IsValid() {
		log.Fatalf("Invalid role %q (expected user, parent or developer)", role)
	}

	accountService := services.NewAccountService(repository.NewAccountRepository(store), appLogger)

	account, err := accountService.CreateAccount(context.Background(), ports.CreateAccountRequest{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
		Role:        accountRole,
	})
	if err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}

	fmt.Printf("Account created successfully:\n")
	fmt.Printf("  ID: %s\n", account.ID)
	fmt.Printf("  Username: %s\n", account.Username)
	fmt.Printf("  Display name: %s\n", account.DisplayName)
	fmt.Printf("  Role: %s\n", account.Role)
}

func resetLists() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := filestore.Open(cfg.Storage, appLogger)
	if err != nil {
		log.Fatalf("Failed to open file store: %v", err)
	}
	defer store.Close()

	listService := services.NewListService(repository.NewListRepository(store), repository.NewDraftCache(), appLogger)
	if err := listService.Reset(context.Background()); err != nil {
		log.Fatalf("Failed to reset wish lists: %v", err)
	}

	fmt.Println("All wish lists deleted")
}
