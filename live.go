package pawsgo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

// Canned chat lines for the simulated walker, split by walk phase.
var (
	openingLines  = []string{"¡Arrancamos! 🐕 Energía a tope.", "El clima está perfecto.", "¡Listo! Empezamos la aventura."}
	midwayLines   = []string{"Parada técnica para agua 💧", "Olfateando un árbol 🌳", "Vamos a muy buen ritmo."}
	closingLines  = []string{"Ya vamos de regreso a casa 🏠", "Últimas cuadras, va feliz.", "Casi llegamos."}
	walkerReplies = []string{"¡Entendido!", "👍", "Claro, sin problema.", "¡Hecho!"}
)

// One tick of wall time advances the simulated walk by two minutes.
const simulatedMinutesPerTick = 2

// How many ticks the simulated walker takes to answer an owner message.
const replyDelayTicks = 2

// LiveWalk drives the scripted chat of a walk in progress. It is a purely
// presentational simulation: every message it produces goes through the
// repository like a real one, but the schedule is fixed.
//
// The repository itself assumes a single writer, while Run, OwnerMessage,
// and CancelWalk are called from different goroutines; a mutex serializes
// every repository access they make.
//
// A LiveWalk has no lifecycle of its own; cancelling the context passed to
// Run or OwnerMessage abandons whatever messages were still pending.
type LiveWalk struct {
	app        *App
	walk       domain.Walk
	tick       time.Duration
	walkerName string
	mu         sync.Mutex

	// OnMessage, when set, is invoked after each message lands in the
	// repository - used by the UI to refresh the chat view.
	OnMessage func(msg domain.ChatMessage)
}

// NewLiveWalk prepares the simulation for the given walk. The tick duration
// is the wall time between simulation steps; the UI uses one second.
func (app *App) NewLiveWalk(walk domain.Walk, tick time.Duration) *LiveWalk {
	walkerName := "Paseador"
	if walker, ok := app.WalkerByID(walk.WalkerID); ok {
		walkerName = walker.Name
	}
	return &LiveWalk{
		app:        app,
		walk:       walk,
		tick:       tick,
		walkerName: walkerName,
	}
}

// Run plays the scripted walk chat: an opening system message and greeting on
// a fresh chat, phase lines at fixed simulated minutes, and an arrival system
// message once the walk duration has elapsed. It blocks until done or until
// ctx is cancelled.
func (live *LiveWalk) Run(ctx context.Context) error {
	if live.freshChat() {
		if err := live.say(domain.SenderSystem, "Sistema", "📍 GPS Conectado. Ruta cargada."); err != nil {
			return err
		}
		if err := live.wait(ctx, 1); err != nil {
			return err
		}
		greeting := fmt.Sprintf("¡Hola! Ya tengo a %s, ¡vamonos! 🐕", live.walk.PetName)
		if err := live.say(domain.SenderWalker, live.walkerName, greeting); err != nil {
			return err
		}
	}

	// The phase marks are checked independently: on short walks they can
	// fall on the same simulated minute and each still gets its line.
	total := live.walk.Duration
	for minutes := 0; minutes < total; {
		if err := live.wait(ctx, 1); err != nil {
			return err
		}
		minutes += simulatedMinutesPerTick

		if minutes == 4 {
			if err := live.say(domain.SenderWalker, live.walkerName, pick(openingLines)); err != nil {
				return err
			}
		}
		if minutes == total/2 {
			if err := live.say(domain.SenderWalker, live.walkerName, pick(midwayLines)); err != nil {
				return err
			}
		}
		if minutes == total-4 {
			if err := live.say(domain.SenderWalker, live.walkerName, pick(closingLines)); err != nil {
				return err
			}
		}
	}

	return live.say(domain.SenderSystem, "Sistema", "🏁 Has llegado a tu destino.")
}

// freshChat reports whether the walk exists with an empty chat history.
func (live *LiveWalk) freshChat() bool {
	live.mu.Lock()
	defer live.mu.Unlock()
	current, ok := live.app.Repo.GetWalk(live.walk.ID)
	return ok && len(current.ChatHistory) == 0
}

// CancelWalk marks the walk cancelled through the same lock that serializes
// the chat writes, so callers may invoke it while Run is still active.
func (live *LiveWalk) CancelWalk() (bool, error) {
	live.mu.Lock()
	defer live.mu.Unlock()
	found, err := live.app.Repo.CancelWalk(live.walk.ID)
	if err != nil {
		return found, fmt.Errorf("cancelling walk %s : %w", live.walk.ID, err)
	}
	return found, nil
}

// OwnerMessage appends the owner's message to the chat and, after a short
// delay, the walker's canned reply. It blocks for the reply delay, so the UI
// runs it off the render path.
func (live *LiveWalk) OwnerMessage(ctx context.Context, text string) error {
	if err := live.say(domain.SenderOwner, "Yo", text); err != nil {
		return err
	}
	if err := live.wait(ctx, replyDelayTicks); err != nil {
		return err
	}
	return live.say(domain.SenderWalker, live.walkerName, pick(walkerReplies))
}

// say appends one message to the walk chat and notifies the UI callback.
// An unknown walk id is absorbed, matching the repository contract.
// The lock covers the callback as well, so the UI sees messages in
// repository order.
func (live *LiveWalk) say(senderID, senderName, text string) error {
	live.mu.Lock()
	defer live.mu.Unlock()

	msg := domain.NewChatMessage(senderID, senderName, text)
	found, err := live.app.Repo.AddMessageToWalk(live.walk.ID, msg)
	if err != nil {
		return fmt.Errorf("appending chat message : %w", err)
	}
	if !found {
		return nil
	}

	live.app.Logger.Debug("chat message",
		zap.String("walk_id", live.walk.ID),
		zap.String("sender", senderID),
	)
	if live.OnMessage != nil {
		live.OnMessage(msg)
	}
	return nil
}

// wait sleeps for n ticks or until ctx is cancelled.
func (live *LiveWalk) wait(ctx context.Context, n int) error {
	timer := time.NewTimer(time.Duration(n) * live.tick)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func pick(lines []string) string {
	return lines[rand.IntN(len(lines))]
}
