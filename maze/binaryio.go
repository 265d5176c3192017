package maze

import (
	"encoding/binary"
	"fmt"
	"os"
)

// BackupWallRecordsToFile appends every WallRecord observed since the last
// successful backup to filepath as little-endian uint16s. When clear is
// true, or the file on disk holds more records than this Maze believes it
// already wrote, the file is truncated first and the whole in-memory log is
// rewritten — recovering from a backup file produced by the wrong session.
func (m *Maze) BackupWallRecordsToFile(filepath string, clear bool) error {
	if !clear && m.wallRecordsBackupCounter == len(m.wallRecords) {
		return nil
	}
	if info, err := os.Stat(filepath); err == nil {
		onDisk := int(info.Size()) / 2
		if clear || onDisk > m.wallRecordsBackupCounter {
			if err := os.Remove(filepath); err != nil {
				return fmt.Errorf("%w: %v", ErrFileIO, err)
			}
			m.wallRecordsBackupCounter = 0
		}
	}
	f, err := os.OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer f.Close()
	for m.wallRecordsBackupCounter < len(m.wallRecords) {
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(m.wallRecords[m.wallRecordsBackupCounter]))
		if _, err := f.Write(buf[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
		m.wallRecordsBackupCounter++
	}
	return nil
}

// RestoreWallRecordsFromFile resets m and replays every WallRecord stored
// in filepath through UpdateWall, in order.
func (m *Maze) RestoreWallRecordsFromFile(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	m.Reset(true)
	for i := 0; i+1 < len(data); i += 2 {
		wr := WallRecord(binary.LittleEndian.Uint16(data[i : i+2]))
		m.UpdateWall(wr.Position(), wr.D(), wr.B())
		m.wallRecordsBackupCounter++
	}
	return nil
}
