package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init configures the process-wide Snowflake node. Only the first call has effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered int64 ID. Rows created later sort after rows created earlier,
// which the comment listing relies on as a tiebreaker for equal timestamps.
func New() int64 {
	return node.Generate().Int64()
}

// Parse decodes a decimal ID as it appears in URLs and JSON bodies.
func Parse(s string) (int64, error) {
	sid, err := snowflake.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", s, err)
	}
	if sid.Int64() <= 0 {
		return 0, fmt.Errorf("parsing id %q: must be positive", s)
	}
	return sid.Int64(), nil
}
