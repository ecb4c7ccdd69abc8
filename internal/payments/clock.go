package payments

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Jakarta is the partner's fixed +07:00 offset. A fixed zone avoids relying
// on tzdata being present in the container.
var Jakarta = time.FixedZone("WIB", 7*60*60)

const (
	snapLayout   = "2006-01-02T15:04:05-07:00"
	legacyLayout = "2006-01-02 15:04:05"
)

// SNAPTimestamp formats t as ISO-8601 with seconds precision, e.g.
// 2025-09-05T23:59:00+07:00.
func SNAPTimestamp(t time.Time) string {
	return t.In(Jakarta).Format(snapLayout)
}

// LegacyTimestamp is the rq_datetime format of the form-encoded APIs.
func LegacyTimestamp(t time.Time) string {
	return t.In(Jakarta).Format(legacyLayout)
}

var externalIDMod = new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)

// ExternalID is YYYYMMDD followed by 16 digits taken from id.
func ExternalID(t time.Time, id uuid.UUID) string {
	n := new(big.Int).SetBytes(id[:])
	n.Mod(n, externalIDMod)
	out := t.In(Jakarta).Format("20060102") + fmt.Sprintf("%016d", n)
	if len(out) > 32 {
		out = out[:32]
	}
	return out
}
