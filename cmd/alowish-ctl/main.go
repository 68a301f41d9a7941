package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/spf13/pflag"

	"alowish/internal/ipc"
)

const usage = `usage: alowish-ctl <command> [args]

commands:
  say <text>   route one message through the assistant
  listen       start a push-to-talk listening session
  sos          trigger the emergency flow
  mute         silence spoken replies
  unmute       re-enable spoken replies
  status       print the device state snapshot
`

func main() {
	cli.Parse()
	args := cli.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd := ipc.Command{Cmd: args[0], Arg: strings.Join(args[1:], " ")}
	reply, err := ipc.Send(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "alowish-daemon not running:", err)
		os.Exit(1)
	}

	if !reply.OK {
		fmt.Fprintln(os.Stderr, "error:", reply.Detail)
		os.Exit(1)
	}
	if reply.Detail != "" {
		fmt.Println(reply.Detail)
	}
	if len(reply.State) > 0 {
		fmt.Println(string(reply.State))
	}
}
