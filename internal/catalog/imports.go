// Package catalog holds the platform's closed lookup tables: import
// sources, recognised variant keys and display names for game versions.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ImportType identifies where a score came from, e.g. "file/batch-manual".
type ImportType string

// Channel is the ingestion channel an import type belongs to.
type Channel string

const (
	ChannelFile Channel = "file"
	ChannelIR   Channel = "ir"
	ChannelAPI  Channel = "api"
)

// ErrUnknownImportType is returned by ParseImportType.
var ErrUnknownImportType = errors.New("unknown import type")

// File upload import types.
var FileImportTypes = []ImportType{
	"file/eamusement-iidx-csv",
	"file/eamusement-sdvx-csv",
	"file/batch-manual",
	"file/solid-state-squad",
	"file/mer-iidx",
	"file/pli-iidx-csv",
}

// Realtime (internet ranking) import types.
var IRImportTypes = []ImportType{
	"ir/direct-manual",
	"ir/barbatos",
	"ir/fervidex",
	"ir/fervidex-static",
	"ir/beatoraja",
	"ir/usc",
	"ir/kshook-sv3c",
}

// Third-party service import types.
var APIImportTypes = []ImportType{
	"api/arc-iidx",
	"api/arc-sdvx",
	"api/eag-iidx",
	"api/eag-sdvx",
	"api/flo-iidx",
	"api/flo-sdvx",
	"api/min-sdvx",
}

// AllImportTypes returns every import type, file first, then IR, then API.
func AllImportTypes() []ImportType {
	out := make([]ImportType, 0, len(FileImportTypes)+len(IRImportTypes)+len(APIImportTypes))
	out = append(out, FileImportTypes...)
	out = append(out, IRImportTypes...)
	out = append(out, APIImportTypes...)
	return out
}

// Channel returns the prefix of the import type.
func (t ImportType) Channel() Channel {
	ch, _, _ := strings.Cut(string(t), "/")
	return Channel(ch)
}

// ImportTypesFor returns the import types of one channel.
func ImportTypesFor(ch Channel) []ImportType {
	switch ch {
	case ChannelFile:
		return append([]ImportType(nil), FileImportTypes...)
	case ChannelIR:
		return append([]ImportType(nil), IRImportTypes...)
	case ChannelAPI:
		return append([]ImportType(nil), APIImportTypes...)
	}
	return nil
}

// ParseImportType returns s as an ImportType if it is a known one.
func ParseImportType(s string) (ImportType, error) {
	for _, t := range AllImportTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownImportType, s)
}
