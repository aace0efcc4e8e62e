package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akarpov/marknote/internal/client/api"
	"github.com/akarpov/marknote/internal/client/cli"
	"github.com/akarpov/marknote/internal/client/editor"
	"github.com/akarpov/marknote/internal/client/iocli"
	"github.com/akarpov/marknote/internal/client/notes"
	"github.com/akarpov/marknote/internal/client/preview"
	"github.com/akarpov/marknote/internal/client/sched"
	"github.com/akarpov/marknote/internal/client/session"
	"github.com/akarpov/marknote/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "marknote-client.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	sessions := session.NewManager(apiClient, boltStorage, logger)
	notesMgr := notes.NewManager(apiClient, sessions)
	editorSession := editor.NewSession(notesMgr, sched.New(sched.RealClock()), logger)
	renderer := preview.NewRenderer()

	c := cli.New(sessions, notesMgr, editorSession, renderer, iocli.NewStdio())

	if err := runCommand(ctx, c, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, c *cli.Cli, command string, args []string) error {
	argOrEmpty := func() string {
		if len(args) > 0 {
			return args[0]
		}
		return ""
	}

	switch command {
	case "register":
		return c.RunRegister(ctx)
	case "login":
		return c.RunLogin(ctx)
	case "logout":
		return c.RunLogout(ctx)
	case "status":
		return c.RunStatus(ctx)
	case "list":
		return c.RunList(ctx)
	case "get":
		return c.RunGet(ctx, argOrEmpty())
	case "view":
		return c.RunView(ctx, argOrEmpty())
	case "create":
		return c.RunCreate(ctx)
	case "edit":
		return c.RunEdit(ctx, argOrEmpty())
	case "delete":
		return c.RunDelete(ctx, argOrEmpty())
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("Marknote Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
