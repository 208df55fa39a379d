package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/tui-invaders/internal/run"
)

// AppName names the per-user data directory.
const AppName = "tui_invaders"

const (
	runObject   = "run"
	runProperty = "checkpoint"
)

// blobStore is the slice of *gdata.Manager the store uses.
type blobStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Store keeps one checkpointed run. It implements run.Saver.
type Store struct {
	blobs blobStore
}

var _ run.Saver = (*Store)(nil)

// Open opens the save slot in the user's data directory.
func Open(appName string) (*Store, error) {
	if appName == "" {
		appName = AppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return &Store{blobs: m}, nil
}

// Save overwrites the checkpoint with s.
func (st *Store) Save(s run.GameState) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := st.blobs.SaveObjectProp(runObject, runProperty, data); err != nil {
		return fmt.Errorf("save: write checkpoint: %w", err)
	}
	return nil
}

// Load returns the checkpoint. ErrNoSave when there is none, ErrCorrupt
// when it cannot be decoded.
func (st *Store) Load() (run.GameState, error) {
	if !st.blobs.ObjectPropExists(runObject, runProperty) {
		return run.GameState{}, ErrNoSave
	}
	data, err := st.blobs.LoadObjectProp(runObject, runProperty)
	if err != nil {
		return run.GameState{}, fmt.Errorf("save: read checkpoint: %w", err)
	}
	return Decode(data)
}

// Clear drops the checkpoint. An empty blob reads back as ErrNoSave.
func (st *Store) Clear() error {
	if !st.blobs.ObjectPropExists(runObject, runProperty) {
		return nil
	}
	if err := st.blobs.SaveObjectProp(runObject, runProperty, nil); err != nil {
		return fmt.Errorf("save: clear checkpoint: %w", err)
	}
	return nil
}
