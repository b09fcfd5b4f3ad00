package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/usp-protocol/usp-go/pkg/log"
)

// FilterOptions holds the raw flag values shared by view and filter.
type FilterOptions struct {
	SessionID  string
	EndpointID string
	MsgType    string
	TimeStart  string
	TimeEnd    string
	Layer      string
	Direction  string
	Category   string
}

// Build converts the flag values into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		SessionID:  o.SessionID,
		EndpointID: o.EndpointID,
		MsgType:    o.MsgType,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Layer != "" {
		l, err := ParseLayerFlag(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunFilter copies the events of path matching filter into a new capture
// file at output and returns how many were written. The output is flushed
// before returning; a write failure is reported even if every event was
// read.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return logger.Written(), fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	if err := logger.Close(); err != nil {
		return logger.Written(), fmt.Errorf("failed to write output file: %w", err)
	}
	return logger.Written(), nil
}
