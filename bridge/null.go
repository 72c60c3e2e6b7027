package bridge

import (
	"encoding/json"
	"log"
)

// NullHostBridge is the dev-mode stand-in used outside the host: it logs
// the call and alerts the operator with what would have happened.
type NullHostBridge struct {
	Alerter Alerter
	Logger  *log.Logger
}

func NewNullHostBridge(a Alerter) *NullHostBridge {
	return &NullHostBridge{Alerter: a, Logger: log.Default()}
}

func (n *NullHostBridge) Send(c Call) error {
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	args, err := json.Marshal(c.Args)
	if err != nil {
		args = []byte("<unserialisable>")
	}
	logger.Printf("[Dev Mode] %s %s", c.Event, args)

	if n.Alerter != nil {
		n.Alerter.Alert(c.DevNotice())
	}
	return nil
}
