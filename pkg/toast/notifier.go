package toast

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"beveragebuddy/internal/models/view_models"
	"beveragebuddy/pkg/utils"
)

const (
	CookieName = "bb_toast"

	// DisplayDuration is how long the browser shows a toast.
	DisplayDuration = 3 * time.Second
	Position        = "bottom-start"

	pendingTTL = time.Minute
)

// Notifier carries a toast across a post/redirect/get round trip. The
// message is kept in a Store and the browser holds a signed token naming it.
type Notifier struct {
	store  Store
	secret []byte
}

func NewNotifier(store Store, secret []byte) *Notifier {
	return &Notifier{store: store, secret: secret}
}

// Show queues message for the next page rendered for this client.
func (n *Notifier) Show(c *gin.Context, message string) error {
	id := uuid.New().String()
	token, err := utils.CreateToastToken(id, n.secret, pendingTTL)
	if err != nil {
		return err
	}

	n.store.Set(id, message, pendingTTL)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(pendingTTL.Seconds()), "/", "", false, true)
	return nil
}

// Take returns the pending toast for this client, if any, and clears it.
func (n *Notifier) Take(c *gin.Context) *view_models.Toast {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	claims, err := utils.ValidateToastToken(token, n.secret)
	if err != nil {
		log.Debug().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("dropping invalid toast token")
		return nil
	}

	message := n.store.Consume(claims.ID)
	if message == "" {
		return nil
	}
	return &view_models.Toast{
		Message:  message,
		Duration: DisplayDuration,
		Position: Position,
	}
}
