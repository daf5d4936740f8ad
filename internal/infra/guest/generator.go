package guest

import (
	"math/rand/v2"
	"strconv"
	"time"

	"spinrate/internal/domain/service"

	"github.com/google/uuid"
)

type generator struct {
	newUUID func() (uuid.UUID, error)
	now     func() time.Time
}

// NewGenerator returns a GuestIDGenerator producing random UUIDs.
func NewGenerator() service.GuestIDGenerator {
	return &generator{
		newUUID: uuid.NewRandom,
		now:     time.Now,
	}
}

// NewGuestID returns a random UUID, or a random base36 token suffixed with the
// current unix milliseconds when the system randomness source fails.
func (g *generator) NewGuestID() string {
	if id, err := g.newUUID(); err == nil {
		return id.String()
	}

	return strconv.FormatUint(rand.Uint64(), 36) + "-" + strconv.FormatInt(g.now().UnixMilli(), 36)
}
