package sim

import (
	"encoding/json"
	"io"
	"os"
)

// ReplayLog reads result rows written by FileWriter from r and forwards them
// to writer. It returns the number of rows replayed.
func ReplayLog(r io.Reader, writer ResultWriter) (int, error) {
	dec := json.NewDecoder(r)
	n := 0
	for {
		var row ResultRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		if err := writer.Write(row); err != nil {
			return n, err
		}
		n++
	}
}

// ReplayLogFile opens a file and replays its result rows.
func ReplayLogFile(path string, writer ResultWriter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return ReplayLog(f, writer)
}
