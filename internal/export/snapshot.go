package export

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"
)

// SnapshotSubscriber returns a store listener that writes a JSON snapshot
// of the state to path after every save, when auto-save-to-file is enabled
// in the state itself. Notification is fire-and-forget, so failures are
// logged rather than returned.
func SnapshotSubscriber(path string) service.Listener {
	return func(state *model.AppState) {
		if !state.Meta.AutoSaveToFile {
			return
		}
		if err := WriteSnapshot(path, state); err != nil {
			common.LogError(err, "failed to write state snapshot", common.Fields{"path": path})
			return
		}
		slog.Debug("wrote state snapshot", "path", path)
	}
}

// WriteSnapshot writes the JSON dump to path atomically, via a temp file
// rename in the same directory.
func WriteSnapshot(path string, state *model.AppState) error {
	var buf bytes.Buffer
	if err := JSON(&buf, state); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".pinch-snapshot-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
