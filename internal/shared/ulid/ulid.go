package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID returns a new ULID string identifying one parser run. Run IDs sort
// by start time, so report files under reports/ list in run order.
var NewRunID = func() string {
	return ulid.Make().String()
}
