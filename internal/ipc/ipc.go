// Package ipc is the local control surface: a unix socket taking one
// JSON command per connection and answering with a JSON reply.
package ipc

import (
	"encoding/json"
	"fmt"
	log "log/slog"
	"net"
	"os"
)

const SocketPath = "/tmp/alowish.sock"

// Command is one control request. Arg carries the free text for "say"
// and is ignored elsewhere.
type Command struct {
	Cmd string `json:"cmd"`
	Arg string `json:"arg,omitempty"`
}

// Reply reports the outcome. Detail is human-readable; State carries the
// device snapshot for "status".
type Reply struct {
	OK     bool            `json:"ok"`
	Detail string          `json:"detail,omitempty"`
	State  json.RawMessage `json:"state,omitempty"`
}

type Handler func(Command) Reply

// Serve listens on the control socket until accept fails permanently.
// The previous socket file is removed so daemon restarts just work.
func Serve(handler Handler) error {
	os.Remove(SocketPath)

	ln, err := net.Listen("unix", SocketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", SocketPath, err)
	}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				log.Error("Control socket accept failed", "err", err)
				return
			}
			go serveConn(conn, handler)
		}
	}()

	return nil
}

func serveConn(conn net.Conn, handler Handler) {
	defer conn.Close()

	var cmd Command
	if err := json.NewDecoder(conn).Decode(&cmd); err != nil {
		log.Warn("Malformed control command", "err", err)
		return
	}

	reply := handler(cmd)
	if err := json.NewEncoder(conn).Encode(reply); err != nil {
		log.Warn("Failed to write control reply", "err", err)
	}
}

// Send delivers one command to the running daemon and returns its reply.
func Send(cmd Command) (Reply, error) {
	conn, err := net.Dial("unix", SocketPath)
	if err != nil {
		return Reply{}, fmt.Errorf("dial daemon: %w", err)
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(cmd); err != nil {
		return Reply{}, fmt.Errorf("send command: %w", err)
	}

	var reply Reply
	if err := json.NewDecoder(conn).Decode(&reply); err != nil {
		return Reply{}, fmt.Errorf("read reply: %w", err)
	}
	return reply, nil
}
