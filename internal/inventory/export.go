package inventory

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/awnumar/memguard"

	"github.com/atinyakov/GadgetKeeper/internal/models"
)

// exportPayload is the plaintext body sealed inside an encrypted export.
type exportPayload struct {
	Gadgets []models.Gadget       `json:"gadgets"`
	History []models.HistoryEntry `json:"history"`
	Version int                   `json:"version"`
}

// rawPayload defers field decoding so a malformed body can be told apart
// from a body that is not JSON at all.
type rawPayload struct {
	Gadgets json.RawMessage `json:"gadgets"`
	History json.RawMessage `json:"history"`
	Version json.RawMessage `json:"version"`
}

// ExportEncrypted serializes the full store state and seals it with a key
// derived from secret. A fresh iv is used on every call, so exporting the
// same state twice yields different ciphertexts.
func (s *Store) ExportEncrypted(secret string) (models.EncryptedExport, error) {
	if secret == "" {
		return models.EncryptedExport{}, fmt.Errorf("%w: secret must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload := exportPayload{
		Gadgets: s.liveGadgets(),
		History: make([]models.HistoryEntry, len(s.history)),
		Version: s.version,
	}
	copy(payload.History, s.history)

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.EncryptedExport{}, fmt.Errorf("marshal payload: %w", err)
	}

	key := deriveKey(secret)
	defer memguard.WipeBytes(key)

	iv, ciphertext, err := encrypt(key, plaintext)
	if err != nil {
		return models.EncryptedExport{}, err
	}

	return models.EncryptedExport{
		Version: s.version,
		IV:      hex.EncodeToString(iv),
		Data:    hex.EncodeToString(ciphertext),
	}, nil
}

// ImportEncrypted decrypts exp with a key derived from secret and replaces
// the entire store state with the decoded payload. Nothing is merged, and
// the store is left untouched unless decryption and validation both succeed.
func (s *Store) ImportEncrypted(exp models.EncryptedExport, secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrValidation)
	}

	iv, err := hex.DecodeString(exp.IV)
	if err != nil {
		return fmt.Errorf("%w: iv is not valid hex", ErrDecryption)
	}
	ciphertext, err := hex.DecodeString(exp.Data)
	if err != nil {
		return fmt.Errorf("%w: data is not valid hex", ErrDecryption)
	}

	key := deriveKey(secret)
	defer memguard.WipeBytes(key)

	plaintext, err := decrypt(key, iv, ciphertext)
	if err != nil {
		return err
	}

	var raw rawPayload
	if err := json.Unmarshal(plaintext, &raw); err != nil {
		return fmt.Errorf("%w: payload is not valid JSON", ErrDecryption)
	}

	var gadgets []models.Gadget
	if err := unmarshalSeq(raw.Gadgets, &gadgets); err != nil {
		return fmt.Errorf("%w: gadgets must be a sequence of records", ErrValidation)
	}
	var history []models.HistoryEntry
	if err := unmarshalSeq(raw.History, &history); err != nil {
		return fmt.Errorf("%w: history must be a sequence of entries", ErrValidation)
	}

	version := 0
	if v := bytes.TrimSpace(raw.Version); len(v) > 0 && !bytes.Equal(v, []byte("null")) {
		if err := json.Unmarshal(v, &version); err != nil {
			return fmt.Errorf("%w: version must be a number", ErrValidation)
		}
	}
	// Exports written by older builds carry no usable version; start those
	// over at 1 rather than rejecting them.
	if version <= 0 {
		version = 1
	}

	gadgetMap := make(map[string]models.Gadget, len(gadgets))
	order := make([]string, 0, len(gadgets))
	for i, g := range gadgets {
		if err := validateImported(g); err != nil {
			return fmt.Errorf("%w: gadget %d: %v", ErrValidation, i, err)
		}
		if _, dup := gadgetMap[g.ID]; dup {
			return fmt.Errorf("%w: duplicate gadget id %q", ErrValidation, g.ID)
		}
		gadgetMap[g.ID] = g
		order = append(order, g.ID)
	}
	for i, e := range history {
		if !e.Action.Valid() {
			return fmt.Errorf("%w: history entry %d: unknown action %q", ErrValidation, i, e.Action)
		}
		if e.Timestamp.IsZero() {
			return fmt.Errorf("%w: history entry %d: missing timestamp", ErrValidation, i)
		}
		// the snapshot must be a record the store could actually have held
		if err := validateImported(e.Gadget); err != nil {
			return fmt.Errorf("%w: history entry %d: %v", ErrValidation, i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gadgets = gadgetMap
	s.order = order
	s.history = history
	s.version = version
	return nil
}

// unmarshalSeq decodes a JSON array, rejecting the absent and null values
// that json.Unmarshal alone would silently leave as nil slices.
func unmarshalSeq(raw json.RawMessage, dst any) error {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return errors.New("value is absent")
	}
	return json.Unmarshal(v, dst)
}

func validateImported(g models.Gadget) error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("missing id")
	}
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(g.Brand) == "" {
		return errors.New("missing brand")
	}
	if math.IsNaN(g.Price) || math.IsInf(g.Price, 0) {
		return errors.New("non-finite price")
	}
	if g.Price < 0 {
		return errors.New("negative price")
	}
	if g.AddedAt.IsZero() {
		return errors.New("missing addedAt")
	}
	return nil
}
