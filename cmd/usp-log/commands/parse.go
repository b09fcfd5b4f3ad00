// Package commands implements the usp-log CLI commands.
package commands

import (
	"fmt"
	"strings"

	"github.com/usp-protocol/usp-go/pkg/log"
)

// ParseLayerFlag parses a layer string (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "record":
		return log.LayerRecord, nil
	case "msg":
		return log.LayerMsg, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be record or msg)", s)
	}
}

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message or error)", s)
	}
}

func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
