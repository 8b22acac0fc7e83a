package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jerryeechan/poachers/internal/domain"
)

var ErrBadMagic = errors.New("invalid magic")

// Load читает журнал из файла
func Load(path string) (*domain.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.Journal, error) {
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.EntryCount < 0 {
		return nil, fmt.Errorf("negative entry count: %d", header.EntryCount)
	}

	j := &domain.Journal{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Entries:   make([]domain.JournalEntry, 0, header.EntryCount),
	}

	for i := 0; i < int(header.EntryCount); i++ {
		var eh EntryHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		e := domain.JournalEntry{
			Step:   int(eh.Step),
			Action: domain.ActionType(eh.ActionType),
		}
		if eh.PayloadLen > 0 {
			e.Payload = make(json.RawMessage, eh.PayloadLen)
			if _, err := io.ReadFull(r, e.Payload); err != nil {
				return nil, fmt.Errorf("entry %d payload: %w", i, err)
			}
		}
		j.Entries = append(j.Entries, e)
	}

	return j, nil
}
