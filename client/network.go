package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/puyokura/nuiadmin/bridge"
)

// Network owns the connection to the host and turns its traffic into
// tea messages.
type Network struct {
	bridge *bridge.WebsocketBridge
}

func NewNetwork() *Network {
	return &Network{bridge: bridge.NewWebsocketBridge()}
}

type connectedMsg struct{ host string }

type disconnectedMsg struct{ err error }

type errMsg error

// Connect dials and authenticates in the background.
func (n *Network) Connect(host, operator, password string) tea.Cmd {
	return func() tea.Msg {
		if err := n.bridge.Connect(host); err != nil {
			return errMsg(err)
		}
		if err := n.bridge.Authenticate(operator, password); err != nil {
			return errMsg(err)
		}
		log.Printf("connected to %s as %s", host, operator)
		return connectedMsg{host: host}
	}
}

func (n *Network) Disconnect() { n.bridge.Disconnect() }

// WaitForEvent is a tea.Cmd that waits for the next push from the host.
func (n *Network) WaitForEvent() tea.Msg {
	if !n.bridge.Available() {
		return nil
	}
	ev, err := n.bridge.Next()
	if err != nil {
		if !n.bridge.Available() {
			return disconnectedMsg{err: err}
		}
		return errMsg(err)
	}
	return ev
}
