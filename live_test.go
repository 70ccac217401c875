package pawsgo

import (
	"context"
	"testing"
	"time"

	"github.com/pawsandgo/pawsgo/domain"
)

// bookLiveWalk books a 12 minute walk for the live-walk tests.
func bookLiveWalk(t *testing.T, app *App) domain.Walk {
	t.Helper()

	pet := registerTestPet(t, app, "u1", "Firulais")
	walk, err := app.BookWalk(Booking{
		OwnerID:  "u1",
		WalkerID: "w_def1",
		PetID:    pet.ID,
		RouteID:  "r_parque",
		Duration: 12,
	})
	if err != nil {
		t.Fatalf("booking walk: %s", err)
	}
	return walk
}

func TestLiveWalkRun(t *testing.T) {
	t.Run("should play the full script on a fresh chat", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.Run(context.Background()); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		// GPS, greeting, opening, midway, closing, arrival
		if len(stored.ChatHistory) != 6 {
			t.Fatalf("wanted: 6 messages\ngot: %d", len(stored.ChatHistory))
		}

		first := stored.ChatHistory[0]
		if first.SenderID != domain.SenderSystem {
			t.Fatalf("wanted: system sender first\ngot: %s", first.SenderID)
		}
		if first.Message != "📍 GPS Conectado. Ruta cargada." {
			t.Fatalf("wanted: GPS message first\ngot: %s", first.Message)
		}

		greeting := stored.ChatHistory[1]
		if greeting.SenderID != domain.SenderWalker {
			t.Fatalf("wanted: walker greeting second\ngot: %s", greeting.SenderID)
		}
		if greeting.Message != "¡Hola! Ya tengo a Firulais, ¡vamonos! 🐕" {
			t.Fatalf("wanted: greeting with pet name\ngot: %s", greeting.Message)
		}

		last := stored.ChatHistory[len(stored.ChatHistory)-1]
		if last.SenderID != domain.SenderSystem {
			t.Fatalf("wanted: system sender last\ngot: %s", last.SenderID)
		}
		if last.Message != "🏁 Has llegado a tu destino." {
			t.Fatalf("wanted: arrival message last\ngot: %s", last.Message)
		}
	})

	t.Run("should use the walker catalog name in the greeting", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.Run(context.Background()); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		if stored.ChatHistory[1].SenderName != "Ana la Rápida" {
			t.Fatalf("wanted: Ana la Rápida\ngot: %s", stored.ChatHistory[1].SenderName)
		}
	})

	t.Run("should skip the opening on a chat with history", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)
		if _, err := app.Repo.AddMessageToWalk(walk.ID, domain.NewChatMessage(domain.SenderOwner, "Yo", "hola")); err != nil {
			t.Fatalf("seeding chat: %s", err)
		}

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.Run(context.Background()); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		// seed, opening, midway, closing, arrival
		if len(stored.ChatHistory) != 5 {
			t.Fatalf("wanted: 5 messages\ngot: %d", len(stored.ChatHistory))
		}
		if stored.ChatHistory[0].Message != "hola" {
			t.Fatalf("wanted: seed message preserved first\ngot: %s", stored.ChatHistory[0].Message)
		}
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)
		if _, err := app.Repo.AddMessageToWalk(walk.ID, domain.NewChatMessage(domain.SenderOwner, "Yo", "hola")); err != nil {
			t.Fatalf("seeding chat: %s", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.Run(ctx); err != context.Canceled {
			t.Fatalf("wanted: context.Canceled\ngot: %v", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		if len(stored.ChatHistory) != 1 {
			t.Fatalf("wanted: no new messages\ngot: %d", len(stored.ChatHistory))
		}
	})

	t.Run("should emit every phase line when the minutes collide", func(t *testing.T) {
		app := newTestApp(t)
		pet := registerTestPet(t, app, "u1", "Firulais")
		// On an 8 minute walk, minute 4 is the opening, midway, and closing
		// mark all at once.
		walk, err := app.BookWalk(Booking{
			OwnerID:  "u1",
			WalkerID: "w_def1",
			PetID:    pet.ID,
			RouteID:  "r_parque",
			Duration: 8,
		})
		if err != nil {
			t.Fatalf("booking walk: %s", err)
		}

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.Run(context.Background()); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		// GPS, greeting, opening, midway, closing, arrival
		if len(stored.ChatHistory) != 6 {
			t.Fatalf("wanted: 6 messages\ngot: %d", len(stored.ChatHistory))
		}
		for i := 2; i <= 4; i++ {
			if stored.ChatHistory[i].SenderID != domain.SenderWalker {
				t.Fatalf("wanted: walker phase line at %d\ngot: %s", i, stored.ChatHistory[i].SenderID)
			}
		}
	})

	t.Run("should serialize owner messages with the running script", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		received := make(chan domain.ChatMessage, 32)
		live.OnMessage = func(msg domain.ChatMessage) {
			received <- msg
		}

		runDone := make(chan error, 1)
		go func() {
			runDone <- live.Run(context.Background())
		}()

		// Let the prologue land so the script keeps its fresh-chat opening,
		// then talk to the walker while the script is still playing.
		<-received
		<-received
		if err := live.OwnerMessage(context.Background(), "¿Todo bien?"); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		if err := <-runDone; err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		// Full script plus the owner message and its reply, nothing lost.
		if len(stored.ChatHistory) != 8 {
			t.Fatalf("wanted: 8 messages\ngot: %d", len(stored.ChatHistory))
		}
	})

	t.Run("should cancel the walk while the script is running", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		runDone := make(chan error, 1)
		go func() {
			runDone <- live.Run(ctx)
		}()

		found, err := live.CancelWalk()
		if err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		if !found {
			t.Fatalf("wanted: walk found\ngot: not found")
		}
		cancel()
		<-runDone

		stored, _ := app.Repo.GetWalk(walk.ID)
		if stored.Status != domain.WalkCancelled {
			t.Fatalf("wanted: %s\ngot: %s", domain.WalkCancelled, stored.Status)
		}
	})

	t.Run("should notify the callback for each message", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		var seen int
		live.OnMessage = func(msg domain.ChatMessage) {
			seen++
		}
		if err := live.Run(context.Background()); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		if seen != 6 {
			t.Fatalf("wanted: 6 callbacks\ngot: %d", seen)
		}
	})
}

func TestLiveWalkOwnerMessage(t *testing.T) {
	t.Run("should append the owner message and a walker reply", func(t *testing.T) {
		app := newTestApp(t)
		walk := bookLiveWalk(t, app)

		live := app.NewLiveWalk(walk, time.Millisecond)
		if err := live.OwnerMessage(context.Background(), "¿Todo bien?"); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		if len(stored.ChatHistory) != 2 {
			t.Fatalf("wanted: 2 messages\ngot: %d", len(stored.ChatHistory))
		}
		owner := stored.ChatHistory[0]
		if owner.SenderID != domain.SenderOwner || owner.Message != "¿Todo bien?" {
			t.Fatalf("wanted: owner message first\ngot: %s from %s", owner.Message, owner.SenderID)
		}
		if stored.ChatHistory[1].SenderID != domain.SenderWalker {
			t.Fatalf("wanted: walker reply second\ngot: %s", stored.ChatHistory[1].SenderID)
		}
	})
}
