package main

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func setupLogging() (*os.File, error) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile("logs/host.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return logFile, nil
}

func compressLog() {
	source := "logs/host.log"
	timestamp := time.Now().Format("20060102-150405")
	target := fmt.Sprintf("logs/logs-%s.tar.gz", timestamp)

	file, err := os.Open(source)
	if err != nil {
		log.Printf("Failed to open log for compression: %v", err)
		return
	}
	defer file.Close()

	outFile, err := os.Create(target)
	if err != nil {
		log.Printf("Failed to create compressed log file: %v", err)
		return
	}
	defer outFile.Close()

	gw := gzip.NewWriter(outFile)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	defer tw.Close()

	info, err := file.Stat()
	if err != nil {
		log.Printf("Failed to stat log file: %v", err)
		return
	}

	header, err := tar.FileInfoHeader(info, info.Name())
	if err != nil {
		log.Printf("Failed to create tar header: %v", err)
		return
	}
	header.Name = "host.log"

	if err := tw.WriteHeader(header); err != nil {
		log.Printf("Failed to write tar header: %v", err)
		return
	}

	if _, err := io.Copy(tw, file); err != nil {
		log.Printf("Failed to compress log: %v", err)
		return
	}

	log.Printf("Log compressed to %s", target)
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "nuihost",
		Usage: "dev host for the NUI admin dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "hostconfig.json", Usage: "Path to configuration file", Sources: cli.EnvVars("NUIHOST_CONFIG")},
			&cli.StringFlag{Name: "set-password", Usage: "replace the admin password and exit", Sources: cli.EnvVars("NUIHOST_SET_PASSWORD")},
			&cli.BoolFlag{Name: "no-console", Usage: "serve without reading commands from stdin", Sources: cli.EnvVars("NUIHOST_NO_CONSOLE")},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	config := NewConfig(c.String("config"))
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if pw := c.String("set-password"); pw != "" {
		if err := config.SetPassword(pw); err != nil {
			return err
		}
		fmt.Println("Admin password updated.")
		return nil
	}

	logFile, err := setupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logFile.Close()

	store, err := OpenStore(config.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	hub := NewHub(store, config)
	go hub.Run()

	server := &http.Server{Addr: config.Addr(), Handler: newMux(hub, store, config)}
	go func() {
		log.Printf("Host started on %s", config.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if !c.Bool("no-console") {
		go func() {
			runConsole(os.Stdin, os.Stdout, hub, store)
			stop()
		}()
	}
	<-ctx.Done()

	fmt.Println("\nShutting down host...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	compressLog()
	os.Remove("logs/host.log")
	return nil
}

func newMux(hub *Hub, store *Store, config *Config) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body { font-family: sans-serif; text-align: center; padding-top: 50px; }
        code { background: #f4f4f4; padding: 5px; border-radius: 5px; }
    </style>
</head>
<body>
    <h1>%s</h1>
    <p>This is the host bridge endpoint.</p>
    <p>Run: <code>./client --host %s</code></p>
</body>
</html>
`, config.ServerName, config.ServerName, config.Addr())
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	mux.HandleFunc("/api/audit", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*") // Allow CORS

		limit := config.AuditLimit
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v < limit {
			limit = v
		}
		records, err := store.RecentAudit(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(records); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
	return mux
}
