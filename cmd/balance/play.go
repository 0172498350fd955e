package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/balance/audio"
	"github.com/lixenwraith/balance/config"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/events"
	"github.com/lixenwraith/balance/gesture"
	"github.com/lixenwraith/balance/input"
	"github.com/lixenwraith/balance/render"
	"github.com/lixenwraith/balance/render/renderers"
	"github.com/lixenwraith/balance/scores"
	"github.com/lixenwraith/balance/status"
	"github.com/lixenwraith/balance/terminal"
)

type playOptions struct {
	gestureAddr string
	gesture     bool
	noAudio     bool
	keymap      string
	autopilot   bool
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("gesture-addr") {
				cfg.Gesture.Addr = opts.gestureAddr
				cfg.Gesture.Enabled = true
			}
			if opts.gesture {
				cfg.Gesture.Enabled = true
			}
			if opts.noAudio {
				cfg.Audio.Enabled = false
			}
			return runPlay(cfg, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.gestureAddr, "gesture-addr", constants.DefaultGestureAddr, "gesture bridge listen address (enables the bridge)")
	f.BoolVar(&opts.gesture, "gesture", false, "enable the gesture bridge")
	f.BoolVar(&opts.noAudio, "no-audio", false, "disable sound")
	f.StringVar(&opts.keymap, "keymap", "", "TOML keymap overriding default bindings")
	f.BoolVar(&opts.autopilot, "autopilot", false, "start with the autopilot steering")
	return cmd
}

// session owns everything the frame loop touches
type session struct {
	cfg   *config.Config
	term  *terminal.Terminal
	game  *engine.Game
	queue *events.EventQueue

	// pending is reused across frames for drained events
	pending []events.GameEvent

	orch   *render.RenderOrchestrator
	view   render.Viewport
	input  *input.Handler
	sound  *audio.SoundManager
	bridge *gesture.Server
	store  *scores.Store
	stats  *status.Registry

	autopilot   *engine.Autopilot
	autopilotOn bool
	lastPhase   engine.Phase

	width, height int
}

func runPlay(cfg *config.Config, opts *playOptions) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	keys := input.DefaultKeyTable()
	if opts.keymap != "" {
		data, err := os.ReadFile(opts.keymap)
		if err != nil {
			return fmt.Errorf("read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	t, err := terminal.New()
	if err != nil {
		return err
	}
	if err := t.Init(); err != nil {
		return err
	}
	defer t.Fini()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	s := newSession(cfg, t, keys)
	s.autopilotOn = opts.autopilot
	defer s.close()

	return s.run()
}

func newSession(cfg *config.Config, t *terminal.Terminal, keys *input.KeyTable) *session {
	queue := events.NewEventQueue()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := engine.NewGame(cfg.Tuning(), rand.New(rand.NewSource(seed)), queue)

	w, h := t.Size()
	s := &session{
		cfg:       cfg,
		term:      t,
		game:      game,
		queue:     queue,
		orch:      render.NewRenderOrchestrator(t.Screen(), w, h),
		input:     input.NewHandler(keys),
		store:     scores.NewStore(cfg.Scores.Path, cfg.Scores.Keep),
		stats:     status.NewRegistry(),
		autopilot: engine.NewAutopilot(constants.AutopilotLookahead),
		lastPhase: game.Phase,
	}
	renderers.RegisterAll(s.orch)
	s.resize(w, h)

	if tbl, err := s.store.Load(); err != nil {
		log.Printf("scores: %v", err)
	} else {
		game.BestScore = tbl.Best
	}

	acfg, err := audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate, cfg.Audio.EffectVolumes)
	if err != nil {
		log.Printf("audio config: %v", err)
		acfg = audio.DefaultAudioConfig()
		acfg.Enabled = false
	}
	s.sound = audio.NewSoundManager(acfg)
	if err := s.sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	if cfg.Gesture.Enabled {
		s.bridge = gesture.NewServer(gesture.Config{
			Addr:           cfg.Gesture.Addr,
			MinConfidence:  cfg.Gesture.MinConfidence,
			AllowedOrigins: cfg.Gesture.AllowedOrigins,
			Metrics:        s.stats,
		}, queue)
		if err := s.bridge.Start(); err != nil {
			log.Printf("gesture bridge disabled: %v", err)
			s.bridge = nil
		} else {
			s.bridge.BroadcastPhase(game.Phase.String())
		}
	}
	return s
}

func (s *session) close() {
	if s.bridge != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.bridge.Shutdown(ctx)
	}
	s.sound.Cleanup()
	log.Printf("session metrics: %s", s.stats.Summary())
}

func (s *session) run() error {
	s.term.Start()

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.World.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-s.term.Events():
			if quit := s.handleInput(ev); quit {
				return nil
			}
		case <-ticker.C:
			s.step()
			s.draw()
		}
	}
}

// handleInput returns true when the session should end
func (s *session) handleInput(ev terminal.Event) bool {
	if ev.Type == terminal.EventError {
		log.Printf("terminal: %v", ev.Err)
		return false
	}

	in := s.input.Translate(ev)
	if input.Apply(s.game, in) {
		return false
	}
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		muted := s.sound.ToggleMute()
		amount := 0
		if muted {
			amount = 1
		}
		s.queue.Push(events.GameEvent{Type: events.EventMuteToggled, Amount: amount})
	case input.IntentToggleAutopilot:
		s.autopilotOn = !s.autopilotOn
		log.Printf("autopilot: %v", s.autopilotOn)
	case input.IntentResize:
		s.resize(in.Width, in.Height)
	}
	return false
}

func (s *session) resize(w, h int) {
	s.width, s.height = w, h
	tn := s.game.Tuning()
	s.view = render.NewViewport(w, h, 1, tn.Width, tn.Height)
	s.input.SetView(s.view)
	s.orch.Resize(w, h)
}

// step advances one frame and dispatches the events it produced
func (s *session) step() {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start).Microseconds()) / 1000
		s.stats.Floats.Get(status.FrameMillis).Smooth(ms, 0.1)
	}()

	if s.autopilotOn {
		s.autopilot.Steer(s.game)
	}
	s.game.Update()

	s.pending = s.queue.ConsumeInto(s.pending[:0])
	s.stats.Ints.Get(status.EventsOverwritten).Store(int64(s.queue.Overwritten()))
	for _, ev := range s.pending {
		switch ev.Type {
		case events.EventGesture:
			gesture.Apply(s.game, ev)
		case events.EventGameOver:
			s.stats.Inc(status.RoundsPlayed)
			s.sound.HandleEvent(ev)
			if _, err := s.store.Record(ev.Amount, ev.Frame, time.Now()); err != nil {
				log.Printf("scores: %v", err)
			}
		case events.EventMuteToggled:
			log.Printf("audio muted: %v", ev.Amount == 1)
		default:
			s.sound.HandleEvent(ev)
		}
	}

	if s.game.Phase != s.lastPhase {
		s.lastPhase = s.game.Phase
		if s.bridge != nil {
			s.bridge.BroadcastPhase(s.lastPhase.String())
		}
	}
}

func (s *session) draw() {
	ctx := render.RenderContext{
		State:        s.game.Snapshot(),
		View:         s.view,
		ScreenWidth:  s.width,
		ScreenHeight: s.height,
		Muted:        s.sound.Muted(),
		Autopilot:    s.autopilotOn,
		Metrics:      s.stats,
	}
	if s.bridge != nil {
		ctx.GestureClients = s.bridge.ClientCount()
	}
	s.orch.RenderFrame(ctx)
}
