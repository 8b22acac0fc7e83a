package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jerryeechan/poachers/internal/domain"
	"github.com/jerryeechan/poachers/internal/version"
)

const (
	MagicHeader string = `RSJR` // 4 байта
	Version1    uint32 = 1
)

// JournalFileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type JournalFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	EntryCount int32   // 4 байта
}

// EntryHeader - заголовок каждой записанной команды.
type EntryHeader struct {
	Step       int32  // 4
	ActionType uint8  // 1
	_          uint8  // 1, выравнивание
	PayloadLen uint16 // 2
}

type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) (*JournalService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &JournalService{SaveDir: dir}, nil
}

// Save пишет журнал в SaveDir и возвращает путь к файлу
func (s *JournalService) Save(j *domain.Journal) (string, error) {
	filename := fmt.Sprintf("run_%s_%d_%d.rsj", version.Short(), j.Seed, j.Timestamp)
	path := filepath.Join(s.SaveDir, filename)
	return path, WriteFile(path, j)
}

// WriteFile пишет журнал по точному пути
func WriteFile(path string, j *domain.Journal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, j); err != nil {
		return err
	}
	return w.Flush()
}

func writeBinary(w io.Writer, j *domain.Journal) error {
	header := JournalFileHeader{
		Version:    Version1,
		Seed:       j.Seed,
		Timestamp:  j.Timestamp,
		EntryCount: int32(len(j.Entries)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range j.Entries {
		payloadLen := len(e.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long at step %d: %d", e.Step, payloadLen)
		}

		eh := EntryHeader{
			Step:       int32(e.Step),
			ActionType: uint8(e.Action),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &eh); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(e.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
