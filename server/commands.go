package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

const consoleHelp = "Available commands: tickets, bans, unban <id>, push tickets, push actions, audit [n], clients, stop"

// runConsole reads operator commands until "stop" or end of input.
func runConsole(in io.Reader, out io.Writer, hub *Hub, store *Store) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Host console ready. Type 'help' for commands.")
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(out, consoleHelp)
		case "stop":
			fmt.Fprintln(out, "Stopping host...")
			return
		case "clients":
			fmt.Fprintf(out, "%d dashboard(s) connected.\n", hub.Count())
		case "tickets":
			listTickets(out, store)
		case "bans":
			listBans(out, store)
		case "unban":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: unban <id>")
				continue
			}
			ok, err := store.Unban(args[0])
			switch {
			case err != nil:
				fmt.Fprintln(out, "Error unbanning:", err)
			case !ok:
				fmt.Fprintln(out, "Player not banned.")
			default:
				fmt.Fprintln(out, "Player unbanned.")
			}
		case "push":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: push tickets|actions")
				continue
			}
			var err error
			switch args[0] {
			case "tickets":
				err = hub.PushTickets()
			case "actions":
				err = hub.PushActions()
			default:
				fmt.Fprintln(out, "Usage: push tickets|actions")
				continue
			}
			if err != nil {
				fmt.Fprintln(out, "Error pushing:", err)
			} else {
				fmt.Fprintln(out, "Pushed.")
			}
		case "audit":
			n := 10
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 {
					fmt.Fprintln(out, "Usage: audit [n]")
					continue
				}
				n = v
			}
			listAudit(out, store, n)
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}

func listTickets(out io.Writer, store *Store) {
	tickets, err := store.Tickets()
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, t := range tickets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d msgs\n", t.ID, t.Priority, t.Status, t.Title, len(t.Messages))
	}
	tw.Flush()
}

func listBans(out io.Writer, store *Store) {
	bans, err := store.Bans()
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	if len(bans) == 0 {
		fmt.Fprintln(out, "No bans.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, b := range bans {
		length := "permanent"
		if !b.Permanent() {
			length = fmt.Sprintf("%d days", b.Days)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.PlayerID, length, b.Reason, time.Unix(b.CreatedAt, 0).Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func listAudit(out io.Writer, store *Store, n int) {
	records, err := store.RecentAudit(n)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	for _, r := range records {
		fmt.Fprintf(out, "#%d %s %s %s %s\n", r.ID, time.Unix(r.CreatedAt, 0).Format("15:04:05"), r.Operator, r.Event, r.Args)
	}
}
