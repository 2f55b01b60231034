package cards

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"dc-go/internal/model"
)

// ExportDump reads all collections and packages them as a versioned dump,
// with photo blobs re-encoded as standard base64 for the JSON file.
func (s *Service) ExportDump(ctx context.Context) (*model.ExportDumpV1, error) {
	snap, err := s.store.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading collections: %w", err)
	}

	dump := &model.ExportDumpV1{
		Version:    model.DumpVersion,
		ExportedAt: FormatISO(s.clock.Now()),
		Profiles:   snap.Profiles,
		Events:     snap.Events,
		Photos:     make([]model.ExportPhoto, 0, len(snap.Photos)),
	}
	if dump.Profiles == nil {
		dump.Profiles = []*model.Profile{}
	}
	if dump.Events == nil {
		dump.Events = []*model.TimelineEvent{}
	}

	for _, p := range snap.Photos {
		dump.Photos = append(dump.Photos, model.ExportPhoto{
			ID:         p.ID,
			CreatedAt:  p.CreatedAt,
			Mime:       p.Mime,
			DataBase64: base64.StdEncoding.EncodeToString(p.Blob),
		})
	}

	return dump, nil
}

// Export serializes the dump as JSON to w.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	dump, err := s.ExportDump(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("encoding dump: %w", err)
	}

	s.logger.Info("data exported",
		"profiles", len(dump.Profiles),
		"events", len(dump.Events),
		"photos", len(dump.Photos))
	return nil
}

// Import parses a dump from r and writes it to the store according to
// mode. An unparsable file or a version other than 1 is rejected with
// ErrInvalidDump before any collection is touched.
func (s *Service) Import(ctx context.Context, r io.Reader, mode ImportMode) error {
	switch mode {
	case ImportReplace, ImportMerge:
	default:
		return fmt.Errorf("unknown import mode: %q", mode)
	}

	var dump model.ExportDumpV1
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDump, err)
	}
	if dump.Version != model.DumpVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidDump, dump.Version)
	}

	snap, err := decodeDump(&dump)
	if err != nil {
		return err
	}

	if err := s.store.Import(ctx, snap, mode); err != nil {
		return fmt.Errorf("importing dump: %w", err)
	}

	s.logger.Info("data imported",
		"mode", mode,
		"profiles", len(snap.Profiles),
		"events", len(snap.Events),
		"photos", len(snap.Photos))
	return nil
}

// decodeDump turns the wire-format dump into a storable snapshot,
// decoding photo payloads back into binary.
func decodeDump(dump *model.ExportDumpV1) (*model.Snapshot, error) {
	snap := &model.Snapshot{
		Profiles: dump.Profiles,
		Events:   dump.Events,
		Photos:   make([]*model.Photo, 0, len(dump.Photos)),
	}

	for _, p := range dump.Photos {
		blob, err := base64.StdEncoding.DecodeString(p.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: photo %s payload: %v", ErrInvalidDump, p.ID, err)
		}
		snap.Photos = append(snap.Photos, &model.Photo{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			Mime:      p.Mime,
			Blob:      blob,
		})
	}

	return snap, nil
}
