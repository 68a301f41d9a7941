package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"alowish/internal/assistant"
	"alowish/internal/audio"
	"alowish/internal/bus"
	"alowish/internal/device"
	"alowish/internal/gemini"
	"alowish/internal/ipc"
	"alowish/internal/listen"
	"alowish/internal/music"
	"alowish/internal/netcheck"
	"alowish/internal/platform"
	"alowish/internal/profile"
	"alowish/internal/proxy"
	"alowish/internal/sos"
	"alowish/internal/speech"
	"alowish/internal/stt"
	"alowish/internal/tools"
	"alowish/internal/wake"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address (empty = direct)")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	whisperModel := cli.StringP("whisper", "w", "third_party/whisper.cpp/models/ggml-base.bin", "Whisper model path")
	musicDir := cli.StringP("music", "m", os.ExpandEnv("$HOME/Music"), "Music library directory")
	busURL := cli.StringP("bus", "b", "", "Event bus websocket URL (empty = disabled)")
	handsFree := cli.BoolP("hands-free", "f", false, "Listen continuously for the wake word")
	cloudSTT := cli.Bool("cloud-stt", false, "Transcribe through the hosted endpoint instead of local whisper")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	httpClient, err := proxy.Client(*proxyAddr)
	if err != nil {
		log.Error("Failed to build http client", "proxy", *proxyAddr, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// user profile
	store, err := profile.Open(profile.DefaultPath())
	if err != nil {
		log.Error("Failed to open profile store", "err", err)
		os.Exit(1)
	}
	user := store.Current()

	// voice in
	rec := audio.NewRecorder()
	if err := rec.Init(); err != nil {
		log.Error("Failed to init audio", "err", err)
		os.Exit(1)
	}
	defer rec.Close()

	oaiKey := os.Getenv("OPENAI_API_KEY")
	var oai openai.Client
	if oaiKey != "" {
		oai = openai.NewClient(
			option.WithAPIKey(oaiKey),
			option.WithHTTPClient(httpClient),
		)
	}

	var transcriber stt.Transcriber
	if *cloudSTT {
		if oaiKey == "" {
			log.Error("OPENAI_API_KEY not set, cloud transcription unavailable")
			os.Exit(1)
		}
		transcriber = stt.NewCloud(oai)
		log.Debug("Using cloud transcription")
	} else {
		local, err := stt.NewWhisper(*whisperModel, "auto")
		if err != nil {
			log.Error("Failed to load whisper model", "path", *whisperModel, "err", err)
			os.Exit(1)
		}
		defer local.Close()
		transcriber = local
		log.Debug("Loaded whisper", "model", *whisperModel)
	}
	recognizer := stt.NewRecognizer(rec, transcriber)

	// voice out
	var speaker *speech.Speaker
	if oaiKey != "" {
		speaker = speech.NewSpeaker(speech.NewOpenAIEngine(oai))
	} else {
		log.Warn("OPENAI_API_KEY not set, spoken replies disabled")
	}

	// platform services; each one degrades to state-only on failure
	var conn tools.Connectivity
	radios, err := platform.NewRadios()
	if err != nil {
		log.Warn("Radios unavailable", "err", err)
	} else {
		defer radios.Close()
		conn = radios
	}

	var locator sos.Locator = noLocation{}
	geo, err := platform.NewGeoClue()
	if err != nil {
		log.Warn("Location service unavailable", "err", err)
	} else {
		defer geo.Close()
		locator = geo
	}

	intents := platform.NewIntents()
	player := music.NewPlayer(*musicDir)
	state := device.NewState()
	if song := player.Current(); song != "" {
		state.CurrentSong = song
	}

	flow := sos.NewFlow(locator, intents, intents, sosSpeaker{speaker}, store.Contacts)
	bridge := tools.NewBridge(state, intents, flow, player, conn)

	// online brain
	var brain assistant.Brain
	var chat *gemini.Client
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		chat, err = gemini.NewClient(ctx, key, httpClient)
		if err != nil {
			log.Error("Failed to create gemini client", "err", err)
			os.Exit(1)
		}
		if err := chat.StartChat(ctx, user); err != nil {
			log.Warn("Failed to start chat session", "err", err)
		} else {
			brain = chat
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, running offline-only")
	}

	pub := bus.NewPublisher(*busURL, 5*time.Second)
	go pub.Run(ctx)

	var sp assistant.Speaker
	if speaker != nil {
		sp = speaker
	}
	asst := assistant.New(state, bridge, brain, netcheck.New(), sp, intents, pub)
	if user != nil {
		asst.Greet(user.Name)
	}

	log.Info("Boot up - successful")

	onText := func(text string) { asst.HandleText(ctx, text) }
	onAck := func() {
		if speaker != nil {
			speaker.Speak("I'm listening.")
		}
	}

	if err := ipc.Serve(control(asst, state, flow, speaker, recognizer, onText, onAck)); err != nil {
		log.Error("Failed to start control socket", "err", err)
		os.Exit(1)
	}

	if *handsFree {
		runHandsFree(ctx, recognizer, onText, onAck)
	}

	<-ctx.Done()
	log.Info("Shutting down")
}

// noLocation keeps the SOS flow on its degraded path when GeoClue is
// missing; the message still goes out, just without coordinates.
type noLocation struct{}

func (noLocation) Current(context.Context) (float64, float64, error) {
	return 0, 0, errors.New("location service unavailable")
}

// sosSpeaker adapts the nilable speaker to the SOS contract: the alert
// line must never be lost to a missing TTS key.
type sosSpeaker struct {
	s *speech.Speaker
}

func (w sosSpeaker) SpeakForced(text string) {
	if w.s == nil {
		log.Warn("No TTS available for SOS alert", "text", text)
		return
	}
	w.s.SpeakForced(text)
}

func control(asst *assistant.Assistant, state *device.State, flow *sos.Flow, speaker *speech.Speaker, recognizer *stt.Recognizer, onText func(string), onAck func()) ipc.Handler {
	return func(cmd ipc.Command) ipc.Reply {
		switch cmd.Cmd {
		case "say":
			if cmd.Arg == "" {
				return ipc.Reply{Detail: "say needs text"}
			}
			if !asst.HandleText(context.Background(), cmd.Arg) {
				return ipc.Reply{Detail: "busy"}
			}
			hist := asst.History()
			return ipc.Reply{OK: true, Detail: hist[len(hist)-1].Text}

		case "listen":
			session := listen.NewSession(recognizer, wake.Default(), false, onText, onAck)
			go func() {
				if err := session.Run(context.Background()); err != nil {
					log.Error("Listen session failed", "err", err)
				}
			}()
			return ipc.Reply{OK: true, Detail: "listening"}

		case "sos":
			flow.Escalate()
			return ipc.Reply{OK: true, Detail: "SOS triggered"}

		case "mute", "unmute":
			if speaker == nil {
				return ipc.Reply{Detail: "no TTS configured"}
			}
			speaker.SetEnabled(cmd.Cmd == "unmute")
			return ipc.Reply{OK: true}

		case "status":
			snapshot, err := json.Marshal(state)
			if err != nil {
				return ipc.Reply{Detail: err.Error()}
			}
			return ipc.Reply{OK: true, State: snapshot}

		default:
			log.Warn("Unknown command", "cmd", cmd.Cmd)
			return ipc.Reply{Detail: "unknown command"}
		}
	}
}

func runHandsFree(ctx context.Context, recognizer *stt.Recognizer, onText func(string), onAck func()) {
	go func() {
		for ctx.Err() == nil {
			session := listen.NewSession(recognizer, wake.Default(), true, onText, onAck)
			if err := session.Run(ctx); err != nil {
				log.Error("Hands-free session failed", "err", err)
				time.Sleep(time.Second)
			}
		}
	}()
	log.Info("Hands-free listening enabled")
}
