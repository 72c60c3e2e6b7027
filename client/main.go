package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/puyokura/nuiadmin/i18n"
	"github.com/urfave/cli/v3"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "nuiadmin",
		Usage: "admin dashboard for the game server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: "localhost:8080", Usage: "host bridge address", Sources: cli.EnvVars("NUIADMIN_HOST")},
			&cli.StringFlag{Name: "operator", Value: "admin", Usage: "operator name", Sources: cli.EnvVars("NUIADMIN_OPERATOR")},
			&cli.StringFlag{Name: "password", Usage: "operator password", Sources: cli.EnvVars("NUIADMIN_PASSWORD")},
			&cli.StringFlag{Name: "log", Value: "client.log", Usage: "debug log file", Sources: cli.EnvVars("NUIADMIN_LOG")},
			&cli.StringFlag{Name: "preferences", Value: "preferences.json", Usage: "language preference file", Sources: cli.EnvVars("NUIADMIN_PREFERENCES")},
			&cli.BoolFlag{Name: "offline", Usage: "run in dev mode without a host", Sources: cli.EnvVars("NUIADMIN_OFFLINE")},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	f, err := tea.LogToFile(c.String("log"), "nuiadmin")
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	prefs := i18n.NewPreferences(c.String("preferences"))
	if err := prefs.Load(); err != nil {
		log.Printf("preferences: %v", err)
	}

	net := NewNetwork()
	defer net.Disconnect()

	opts := Options{
		Host:     c.String("host"),
		Operator: c.String("operator"),
		Password: c.String("password"),
		Offline:  c.Bool("offline"),
	}
	p := tea.NewProgram(newApp(opts, net, prefs), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
