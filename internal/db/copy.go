package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/namecleaner/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading NameRows from a channel.
// The producer blocks once the channel buffer is full, so COPY sets the pace.
type ChannelSource struct {
	ch      <-chan *model.NameRow
	current *model.NameRow
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.NameRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err always returns nil; producer errors are reported out of band.
func (s *ChannelSource) Err() error {
	return nil
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
