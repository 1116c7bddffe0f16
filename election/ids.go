// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewCandidateID returns an id of the form candidate_<unix-ms>_<random>.
// The millisecond prefix keeps ids roughly sortable by registration time;
// the random suffix makes reuse practically impossible.
func NewCandidateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("candidate_%d_%s", time.Now().UnixMilli(), suffix)
}
