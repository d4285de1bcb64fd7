// Command feedwalk walks a Crave feed from the terminal. It drives the same
// data source, list controller and player window the app uses against a
// running API, and prints what would be on screen at every step.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crave/internal/activepost"
	"crave/internal/feed"
	"crave/internal/middleware"
	"crave/internal/models"
	"crave/internal/observability"
	"crave/internal/player"
	"crave/internal/remote"

	"github.com/joho/godotenv"
)

// logEngine stands in for a video decoder: it is ready as soon as it is
// created and only logs transport commands.
type logEngine struct {
	source string
}

func (e *logEngine) Play() error {
	log.Printf("▶️  play  %s", e.source)
	return nil
}

func (e *logEngine) Pause() error {
	log.Printf("⏸️  pause %s", e.source)
	return nil
}

func (e *logEngine) Close() error { return nil }

func logEngines(_ context.Context, source string, cb player.Callbacks) (player.Engine, error) {
	cb.Ready()
	return &logEngine{source: source}, nil
}

type logNavigator struct{}

func (logNavigator) OpenRecipe(_ context.Context, post *models.Post) {
	if post.Recipe == "" {
		log.Printf("📖 %s has no recipe", post.ID)
		return
	}
	log.Printf("📖 recipe for %s:\n%s", post.ID, post.Recipe)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("CRAVE_API_URL", "http://localhost:8080"), "API base URL")
	feedContext := flag.String("context", string(models.FeedContextDefault), "Feed context: default, profile, restaurant or search")
	contextID := flag.String("id", "", "Owner id, restaurant id or search query")
	initial := flag.String("initial", "", "Post id to open the feed at")
	email := flag.String("email", os.Getenv("CRAVE_EMAIL"), "Sign in with this email")
	password := flag.String("password", os.Getenv("CRAVE_PASSWORD"), "Password for -email")
	steps := flag.Int("steps", 20, "Number of items to walk")
	dwell := flag.Duration("dwell", time.Second, "Time spent on each item")
	shareBase := flag.String("share", "https://crave.app", "Base URL of share links")
	level := flag.String("log-level", envOr("LOG_LEVEL", "warn"), "Log level")
	flag.Parse()

	logger := middleware.SetupLogger("development", observability.ParseLevel(*level))
	observability.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = activepost.WithSignal(ctx, activepost.New())

	client := remote.New(*apiURL, 10*time.Second, logger)
	if *email != "" {
		session, err := client.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("❌ Login failed: %v", err)
		}
		log.Printf("✅ Signed in as %s", session.User.Username)
	}

	source, err := feed.NewDataSource(client, feed.Request{
		Context:       models.FeedContext(*feedContext),
		ContextID:     *contextID,
		InitialPostID: *initial,
	}, feed.Options{Logger: logger})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctrl := feed.NewController(feed.ControllerConfig{
		Source: source,
		Signal: activepost.FromContext(ctx),
		Items: player.ItemConfig{
			Backend:      client,
			Engines:      logEngines,
			Logger:       logger,
			ShareBaseURL: *shareBase,
		},
		Navigator: logNavigator{},
		Logger:    logger,
	})
	if err := ctrl.Mount(ctx); err != nil {
		if errors.Is(err, feed.ErrPostUnavailable) {
			log.Fatalf("🚫 Post %s is not available", *initial)
		}
		log.Fatalf("❌ Failed to open feed: %v", err)
	}
	defer ctrl.Unmount()

	if client.Token() != "" {
		sub, err := client.SubscribePostStatus(ctx, func(evt models.PostStatusEvent) {
			if evt.Status == models.PostStatusRemoved {
				log.Printf("🧹 %s was removed, dropping it", evt.PostID)
				ctrl.Evict(evt.PostID)
			}
		})
		if err != nil {
			log.Printf("⚠️  Live updates unavailable: %v", err)
		} else {
			defer func() { _ = sub.Close() }()
		}
	}

	if ctrl.Empty() {
		log.Println("🍽️  Nothing to watch here yet.")
		return
	}

	walk(ctx, ctrl, *steps, *dwell)
}

func walk(ctx context.Context, ctrl *feed.Controller, steps int, dwell time.Duration) {
	start := 0
	if e, ok := ctrl.Active(); ok {
		for i, cur := range ctrl.Entries() {
			if cur.Key == e.Key {
				start = i
				break
			}
		}
	}

	for step := 0; step < steps; step++ {
		entries := ctrl.Entries()
		i := start + step
		if i >= len(entries) {
			if !ctrl.Paginating() {
				log.Println("🏁 End of feed.")
				return
			}
			if _, err := ctrl.LoadMore(ctx); err != nil {
				log.Printf("⚠️  Could not load more: %v", err)
			}
			entries = ctrl.Entries()
			if i >= len(entries) {
				log.Println("🏁 End of feed.")
				return
			}
		}

		e := entries[i]
		ctrl.OnViewableItemsChanged([]feed.Viewable{{Key: e.Key, PercentVisible: 100}})
		show(ctx, ctrl, i, e)

		remaining := float64(len(entries) - i - 1)
		ctrl.OnScroll(ctx, remaining, 1)

		select {
		case <-ctx.Done():
			return
		case <-time.After(dwell):
		}
	}
}

func show(ctx context.Context, ctrl *feed.Controller, i int, e feed.Entry) {
	item := ctrl.Item(e.Key)
	if item == nil {
		return
	}
	select {
	case <-item.Loaded():
	case <-ctx.Done():
		return
	case <-time.After(5 * time.Second):
	}

	by := e.Post.UserID
	if owner := item.Owner(); owner != nil {
		by = "@" + owner.Username
	}
	like := item.LikeState()
	log.Printf("🎬 #%d %s by %s: %q (%d likes, liked=%t) [%s]",
		i, e.Key, by, e.Post.Caption, like.Shown(), like.On, item.Player().Status())
	if r := item.Restaurant(); r != nil {
		log.Printf("   📍 %s", r.Name)
	}
	log.Printf("   🔗 %s", item.ShareLink())
}
