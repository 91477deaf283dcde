package toast_fx

import (
	"go.uber.org/fx"

	"beveragebuddy/internal/config"
	"beveragebuddy/pkg/toast"
)

var Module = fx.Provide(provideToastStore, provideNotifier)

func provideToastStore() toast.Store {
	return toast.NewMemoryStore()
}

func provideNotifier(store toast.Store, cfg *config.Config) *toast.Notifier {
	return toast.NewNotifier(store, []byte(cfg.ToastSecret))
}
