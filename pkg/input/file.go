package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks action files compressed with zstd.
const CompressedSuffix = ".zst"

// ScriptSource returns a fixed list of actions in order. Once the list is
// exhausted it returns an exit action on every call, so a run always
// terminates even if the script does not end with one.
// A ScriptSource must only be used by one actor.
type ScriptSource struct {
	playerID int
	actions  []actions.Action
	next     int
}

func NewScriptSource(playerID int, script []actions.Action) *ScriptSource {
	return &ScriptSource{
		playerID: playerID,
		actions:  script,
	}
}

// LoadFile reads an action file for the given player. Files ending in
// CompressedSuffix are decompressed with zstd.
func LoadFile(path string, playerID int) (*ScriptSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open action file %s: %v", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedSuffix) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader for %s: %v", path, err)
		}
		defer decoder.Close()
		r = decoder
	}

	script, err := ParseActions(r, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load action file %s: %v", path, err)
	}
	return NewScriptSource(playerID, script), nil
}

func (s *ScriptSource) FetchAction() actions.Action {
	if s.next >= len(s.actions) {
		return actions.Exit{PlayerID: s.playerID}
	}
	action := s.actions[s.next]
	s.next++
	return action
}

// Len returns the number of scripted actions.
func (s *ScriptSource) Len() int {
	return len(s.actions)
}
