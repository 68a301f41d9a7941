// alowish is a text REPL over the offline stack: type a message, get the
// reply the voice daemon would give with no network. Useful for trying
// the rule chain without a microphone or API keys.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"alowish/internal/assistant"
	"alowish/internal/device"
	"alowish/internal/profile"
	"alowish/internal/tools"
)

type offline struct{}

func (offline) Online() bool { return false }

func main() {
	logLevel := cli.StringP("log", "l", "warn", "Log level")
	cli.Parse()

	level := log.LevelWarn
	if *logLevel == "debug" {
		level = log.LevelDebug
	}
	log.SetDefault(log.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))

	store, err := profile.Open(profile.DefaultPath())
	if err != nil {
		log.Error("Failed to open profile store", "err", err)
		os.Exit(1)
	}

	state := device.NewState()
	bridge := tools.NewBridge(state, nil, nil, nil, nil)
	asst := assistant.New(state, bridge, nil, offline{}, nil, nil, nil)

	if user := store.Current(); user != nil {
		fmt.Println(assistant.Welcome(user.Name))
	} else {
		fmt.Println("Hey! I'm Alowish. How can I help you today?")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		asst.HandleText(context.Background(), text)
		hist := asst.History()
		fmt.Println(hist[len(hist)-1].Text)
	}
}
