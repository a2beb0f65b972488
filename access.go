package cycler

import "github.com/kolkov/cycler/internal/cycler/core"

// Cloner is satisfied by a stored type that can produce an independent
// copy of itself. [PublishDefault] uses it to publish without the
// caller supplying an explicit copy function.
type Cloner[T any] = core.Cloner[T]
