package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trainlog/trainlog/internal/domain/training"
)

// SchemaVersion is the version written into every stored envelope.
const SchemaVersion = 1

var (
	// ErrCorrupt indicates a stored value that cannot be decoded.
	ErrCorrupt = errors.New("corrupt session data")
	// ErrUnsupportedVersion indicates data written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
)

type envelope struct {
	Version  int               `json:"version"`
	Sessions []json.RawMessage `json:"sessions"`
}

// Document is a decoded stored value.
type Document struct {
	Sessions []training.TrainingSession
	// Unreadable holds records that failed to decode. They are written back
	// verbatim after the readable sessions.
	Unreadable []UnreadableRecord
}

// UnreadableRecord is one stored record that could not be decoded.
type UnreadableRecord struct {
	Index int
	Raw   json.RawMessage
	Err   error
}

// Encode serialises the full collection into a versioned envelope. Sessions
// whose date would not decode again are rejected with training.ErrInvalidInput.
func Encode(sessions []training.TrainingSession, unreadable ...UnreadableRecord) ([]byte, error) {
	env := envelope{Version: SchemaVersion, Sessions: make([]json.RawMessage, 0, len(sessions)+len(unreadable))}
	for _, sess := range sessions {
		if !sess.Date.Valid() {
			return nil, fmt.Errorf("%w: session %q has date %q", training.ErrInvalidInput, sess.ID, sess.Date)
		}
		raw, err := json.Marshal(sess.Clone())
		if err != nil {
			return nil, fmt.Errorf("encoding session %q: %w", sess.ID, err)
		}
		env.Sessions = append(env.Sessions, raw)
	}
	for _, rec := range unreadable {
		env.Sessions = append(env.Sessions, rec.Raw)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sessions: %w", err)
	}
	return data, nil
}

// Decode parses a stored value. Both the versioned envelope and the bare
// array written by earlier releases are accepted. A record that cannot be
// decoded is reported in Document.Unreadable instead of failing the whole value.
func Decode(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("%w: empty value", ErrCorrupt)
	}

	var records []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if env.Version < 1 {
			return Document{}, fmt.Errorf("%w: missing version", ErrCorrupt)
		}
		if env.Version > SchemaVersion {
			return Document{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
		}
		records = env.Sessions
	default:
		return Document{}, fmt.Errorf("%w: unexpected leading byte %q", ErrCorrupt, trimmed[0])
	}

	doc := Document{Sessions: make([]training.TrainingSession, 0, len(records))}
	for i, raw := range records {
		sess, err := decodeSession(raw)
		if err != nil {
			doc.Unreadable = append(doc.Unreadable, UnreadableRecord{Index: i, Raw: raw, Err: err})
			continue
		}
		doc.Sessions = append(doc.Sessions, sess)
	}
	return doc, nil
}

func decodeSession(raw json.RawMessage) (training.TrainingSession, error) {
	var sess training.TrainingSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return training.TrainingSession{}, err
	}
	// A missing date field or a null record leaves the zero Date behind.
	if !sess.Date.Valid() {
		return training.TrainingSession{}, fmt.Errorf("%w: missing", training.ErrInvalidDate)
	}
	return sess.Clone(), nil
}
